package engine

import "runtime"

// SystemInfo is the system portion of the fact snapshot, collected once per run.
type SystemInfo struct {
	OSName       string `json:"os_name"`
	OSVersion    string `json:"os_version"`
	Architecture string `json:"architecture"`
	CPUModel     string `json:"cpu_model"`
	RAMTotalMB   int64  `json:"ram_total_mb"`
	Hostname     string `json:"hostname"`
}

// GPUInfo describes a single detected GPU. Zero values for VRAMTotalMB and
// TemperatureC mean "unknown", not an actual measurement of zero.
type GPUInfo struct {
	Index         int    `json:"index"`
	Name          string `json:"name"`
	Vendor        string `json:"vendor"` // "NVIDIA", "Intel", "AMD", "Unknown"
	DriverVersion string `json:"driver_version,omitempty"`
	VRAMTotalMB   int64  `json:"vram_total_mb"`
	TemperatureC  int    `json:"temperature_c"`
	IsNVIDIA      bool   `json:"is_nvidia"`
}

// DriverInfo holds NVIDIA driver details. Empty strings mean "not detected".
type DriverInfo struct {
	Version     string `json:"version"`
	CUDAVersion string `json:"cuda_version"`
}

// Facts is the immutable snapshot of everything the evaluator looks at.
// Collectors build it once per run; the engine never mutates it.
type Facts struct {
	System SystemInfo `json:"system"`
	GPUs   []GPUInfo  `json:"gpus"`
	Driver DriverInfo `json:"driver"`
}

// HasNVIDIA reports whether any detected GPU is an NVIDIA GPU.
func (f Facts) HasNVIDIA() bool {
	for _, g := range f.GPUs {
		if g.IsNVIDIA {
			return true
		}
	}
	return false
}

// NVIDIACount returns the number of detected NVIDIA GPUs.
func (f Facts) NVIDIACount() int {
	n := 0
	for _, g := range f.GPUs {
		if g.IsNVIDIA {
			n++
		}
	}
	return n
}

// RunContext carries the environment inputs for one evaluation: the requested
// diagnostic mode and the canonical platform identifier. It is built once at
// the start of a run so the evaluator itself never reads process-wide state.
type RunContext struct {
	Mode     string
	Platform string
}

// NewRunContext builds a RunContext for the current platform.
func NewRunContext(mode string) RunContext {
	return RunContext{Mode: mode, Platform: runtime.GOOS}
}
