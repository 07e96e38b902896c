package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gradkit/strided/tensor"
)

// newDumpCommand creates the dump command, which builds a demo tensor,
// applies view transformations, and prints metadata plus elements. It
// exists to make stride arithmetic visible without writing a program.
func newDumpCommand() *cobra.Command {
	var (
		shapeArg     string
		transposeArg bool
	)

	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Print a demo tensor's metadata and elements",
		RunE: func(cmd *cobra.Command, args []string) error {
			shape, err := parseShape(shapeArg)
			if err != nil {
				return err
			}

			raw, err := tensor.NewRaw(shape, tensor.Float32, tensor.CPU)
			if err != nil {
				return fmt.Errorf("failed to create tensor: %w", err)
			}
			data := raw.AsFloat32()
			for i := 0; i < raw.NumElements(); i++ {
				data[i] = float32(i)
			}

			view := raw
			if transposeArg {
				view, err = raw.Transpose()
				if err != nil {
					return fmt.Errorf("failed to transpose: %w", err)
				}
			}

			fmt.Fprintln(cmd.OutOrStdout(), tensor.Dump(view))
			return nil
		},
	}

	cmd.Flags().StringVar(&shapeArg, "shape", "2x3", "tensor shape, e.g. 2x3x4")
	cmd.Flags().BoolVar(&transposeArg, "transpose", false, "dump the transposed view")
	return cmd
}

func parseShape(s string) (tensor.Shape, error) {
	parts := strings.Split(s, "x")
	shape := make(tensor.Shape, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid shape %q: dimensions must be positive integers", s)
		}
		shape = append(shape, n)
	}
	return shape, nil
}
