package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gradkit/strided/backend/webgpu"
)

// newProbeCommand creates the probe command, which reports the compute
// backends usable on this system.
func newProbeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "probe",
		Short: "Report available compute backends",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "cpu: available")

			if !webgpu.IsAvailable() {
				fmt.Fprintln(out, "webgpu: not available")
				return nil
			}

			adapters, err := webgpu.ListAdapters()
			if err != nil {
				return fmt.Errorf("failed to enumerate WebGPU adapters: %w", err)
			}
			fmt.Fprintf(out, "webgpu: available (%d adapter(s))\n", len(adapters))
			for i, info := range adapters {
				fmt.Fprintf(out, "  adapter %d: %s (%s)\n", i, info.Device, info.Vendor)
			}
			return nil
		},
	}
}
