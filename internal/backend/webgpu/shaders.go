//go:build windows

// Package webgpu provides embedded WGSL compute shaders for statevector
// operations. Using string constants instead of embed for simplicity.
package webgpu

// workgroupSize is the default number of threads per workgroup.
const workgroupSize = 256

// gate1qShader applies a single-qubit gate (optionally controlled) to the
// amplitude buffer. Amplitudes are interleaved f32 re/im pairs. Each
// invocation owns the basis-index pair (i, i|target_bit) with the target
// bit clear and all control bits set.
const gate1qShader = `
@group(0) @binding(0) var<storage, read_write> amps: array<f32>;
@group(0) @binding(1) var<storage, read> gate: array<f32>;

struct Params {
    size: u32,
    target: u32,
    ctrl_mask: u32,
}
@group(0) @binding(2) var<uniform> params: Params;

fn cmul(a: vec2<f32>, b: vec2<f32>) -> vec2<f32> {
    return vec2<f32>(a.x * b.x - a.y * b.y, a.x * b.y + a.y * b.x);
}

@compute @workgroup_size(256)
fn main(@builtin(global_invocation_id) global_id: vec3<u32>) {
    let idx = global_id.x;
    if (idx >= params.size) {
        return;
    }
    let bit = 1u << params.target;
    if ((idx & bit) != 0u) {
        return;
    }
    if ((idx & params.ctrl_mask) != params.ctrl_mask) {
        return;
    }

    let i0 = 2u * idx;
    let i1 = 2u * (idx | bit);
    let a0 = vec2<f32>(amps[i0], amps[i0 + 1u]);
    let a1 = vec2<f32>(amps[i1], amps[i1 + 1u]);

    let m00 = vec2<f32>(gate[0], gate[1]);
    let m01 = vec2<f32>(gate[2], gate[3]);
    let m10 = vec2<f32>(gate[4], gate[5]);
    let m11 = vec2<f32>(gate[6], gate[7]);

    let r0 = cmul(m00, a0) + cmul(m01, a1);
    let r1 = cmul(m10, a0) + cmul(m11, a1);

    amps[i0] = r0.x;
    amps[i0 + 1u] = r0.y;
    amps[i1] = r1.x;
    amps[i1 + 1u] = r1.y;
}
`
