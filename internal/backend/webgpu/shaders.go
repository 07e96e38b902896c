// WGSL compute shaders. The strided kernels receive a packed accessor's
// sizes and strides in the meta buffer (sizes[0..dims) followed by
// strides[0..dims)) and reconstruct element offsets on the device without
// any access to host memory.
package webgpu

// workgroupSize is the number of threads per workgroup.
const workgroupSize = 256

// gatherShader copies a strided view into a dense row-major buffer:
// result[i] = input[offsetOf(i)].
const gatherShader = `
@group(0) @binding(0) var<storage, read> input: array<f32>;
@group(0) @binding(1) var<storage, read_write> result: array<f32>;
@group(0) @binding(2) var<storage, read> meta: array<u32>;

struct Params {
    count: u32,
    dims: u32,
}
@group(0) @binding(3) var<uniform> params: Params;

fn strided_offset(idx: u32) -> u32 {
    var rem = idx;
    var off = 0u;
    for (var d = params.dims; d > 0u; d--) {
        let dim = d - 1u;
        let size = meta[dim];
        let stride = meta[params.dims + dim];
        off += (rem % size) * stride;
        rem = rem / size;
    }
    return off;
}

@compute @workgroup_size(256)
fn main(@builtin(global_invocation_id) global_id: vec3<u32>) {
    let idx = global_id.x;
    if (idx < params.count) {
        result[idx] = input[strided_offset(idx)];
    }
}
`

// scaleShader multiplies a strided view by a scalar into a dense buffer:
// result[i] = input[offsetOf(i)] * alpha.
const scaleShader = `
@group(0) @binding(0) var<storage, read> input: array<f32>;
@group(0) @binding(1) var<storage, read_write> result: array<f32>;
@group(0) @binding(2) var<storage, read> meta: array<u32>;

struct Params {
    count: u32,
    dims: u32,
    alpha: f32,
}
@group(0) @binding(3) var<uniform> params: Params;

fn strided_offset(idx: u32) -> u32 {
    var rem = idx;
    var off = 0u;
    for (var d = params.dims; d > 0u; d--) {
        let dim = d - 1u;
        let size = meta[dim];
        let stride = meta[params.dims + dim];
        off += (rem % size) * stride;
        rem = rem / size;
    }
    return off;
}

@compute @workgroup_size(256)
fn main(@builtin(global_invocation_id) global_id: vec3<u32>) {
    let idx = global_id.x;
    if (idx < params.count) {
        result[idx] = input[strided_offset(idx)] * params.alpha;
    }
}
`

// addShader performs element-wise addition of dense buffers:
// result[i] = a[i] + b[i].
const addShader = `
@group(0) @binding(0) var<storage, read> a: array<f32>;
@group(0) @binding(1) var<storage, read> b: array<f32>;
@group(0) @binding(2) var<storage, read_write> result: array<f32>;

struct Params {
    count: u32,
}
@group(0) @binding(3) var<uniform> params: Params;

@compute @workgroup_size(256)
fn main(@builtin(global_invocation_id) global_id: vec3<u32>) {
    let idx = global_id.x;
    if (idx < params.count) {
        result[idx] = a[idx] + b[idx];
    }
}
`

// matmulShader performs naive dense matrix multiplication:
// result[i,j] = sum_k a[i,k] * b[k,j] for (M, K) @ (K, N).
const matmulShader = `
@group(0) @binding(0) var<storage, read> a: array<f32>;
@group(0) @binding(1) var<storage, read> b: array<f32>;
@group(0) @binding(2) var<storage, read_write> result: array<f32>;

struct Params {
    m: u32,
    k: u32,
    n: u32,
}
@group(0) @binding(3) var<uniform> params: Params;

@compute @workgroup_size(256)
fn main(@builtin(global_invocation_id) global_id: vec3<u32>) {
    let idx = global_id.x;
    if (idx >= params.m * params.n) {
        return;
    }
    let i = idx / params.n;
    let j = idx % params.n;
    var sum = 0.0;
    for (var kk = 0u; kk < params.k; kk++) {
        sum += a[i * params.k + kk] * b[kk * params.n + j];
    }
    result[idx] = sum;
}
`
