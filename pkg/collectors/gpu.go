package collectors

import (
	"regexp"
	"runtime"
	"strconv"
	"strings"

	"github.com/user/gpudoctor/pkg/engine"
)

var (
	cudaVersionRe = regexp.MustCompile(`CUDA Version:\s*([\d.]+)`)
	lspciVGARe    = regexp.MustCompile(`^([0-9a-f:.]+)\s+(?:VGA|3D|Display).*?:\s+(.+?)\s*\[([0-9a-f]{4}):([0-9a-f]{4})\]`)
)

// CollectGPUs gathers GPU and NVIDIA driver facts. nvidia-smi is the primary
// source; on Linux, lspci fills in non-NVIDIA adapters so hybrid setups are
// visible. When neither tool yields anything the GPU set stays empty and the
// driver version stays blank, which is itself a meaningful fact.
func CollectGPUs(timeout int) ([]engine.GPUInfo, engine.DriverInfo, []Note) {
	var gpus []engine.GPUInfo
	var driver engine.DriverInfo
	var notes []Note

	if CommandExists("nvidia-smi") {
		r := RunCommand(timeout, "nvidia-smi",
			"--query-gpu=index,name,driver_version,memory.total,temperature.gpu",
			"--format=csv,noheader,nounits")
		if r.Err != nil {
			notes = append(notes, Note{Collector: "gpu.nvidia-smi", Message: "nvidia-smi query failed: " + r.Err.Error()})
		} else {
			gpus, driver.Version = parseSmiQuery(r.Stdout)
		}

		r = RunCommand(timeout, "nvidia-smi")
		if r.Err == nil {
			driver.CUDAVersion = parseCUDAVersion(r.Stdout)
		}
	} else {
		notes = append(notes, Note{
			Collector: "gpu.nvidia-smi",
			Message:   "nvidia-smi not found in PATH; NVIDIA driver may not be installed",
		})
	}

	if runtime.GOOS == "linux" && CommandExists("lspci") {
		r := RunCommand(timeout, "lspci", "-nn")
		if r.Err != nil {
			notes = append(notes, Note{Collector: "gpu.lspci", Message: r.Err.Error()})
		} else {
			gpus = append(gpus, parseLspci(r.Stdout, gpus)...)
		}
	}

	return gpus, driver, notes
}

// parseSmiQuery parses nvidia-smi CSV query output into GPU facts and the
// driver version. Lines that do not have all five fields are skipped;
// unparseable numbers degrade to 0 ("unknown").
func parseSmiQuery(output string) ([]engine.GPUInfo, string) {
	var gpus []engine.GPUInfo
	var driverVersion string

	for _, line := range strings.Split(output, "\n") {
		fields := strings.Split(line, ", ")
		if len(fields) < 5 {
			continue
		}

		index, _ := strconv.Atoi(strings.TrimSpace(fields[0]))
		vram, _ := strconv.ParseInt(strings.TrimSpace(fields[3]), 10, 64)
		temp, _ := strconv.Atoi(strings.TrimSpace(fields[4]))
		version := strings.TrimSpace(fields[2])

		if driverVersion == "" {
			driverVersion = version
		}

		gpus = append(gpus, engine.GPUInfo{
			Index:         index,
			Name:          strings.TrimSpace(fields[1]),
			Vendor:        "NVIDIA",
			DriverVersion: version,
			VRAMTotalMB:   vram,
			TemperatureC:  temp,
			IsNVIDIA:      true,
		})
	}

	return gpus, driverVersion
}

// parseCUDAVersion extracts the CUDA runtime version from the full
// nvidia-smi header, returning "" when absent.
func parseCUDAVersion(output string) string {
	if m := cudaVersionRe.FindStringSubmatch(output); m != nil {
		return m[1]
	}
	return ""
}

// parseLspci parses `lspci -nn` output into GPU facts for display adapters
// not already known from nvidia-smi. lspci and nvidia-smi name the same card
// differently, so NVIDIA devices are deduplicated by vendor: when nvidia-smi
// already reported NVIDIA GPUs, 10de entries here are skipped. NVIDIA devices
// found only here are still tagged as NVIDIA so presence checks see them even
// when the driver is down.
func parseLspci(output string, existing []engine.GPUInfo) []engine.GPUInfo {
	haveNVIDIA := false
	for _, g := range existing {
		if g.IsNVIDIA {
			haveNVIDIA = true
			break
		}
	}

	var gpus []engine.GPUInfo
	next := len(existing)
	for _, line := range strings.Split(output, "\n") {
		m := lspciVGARe.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			continue
		}

		gpu := engine.GPUInfo{Index: next, Name: m[2]}
		switch strings.ToLower(m[3]) {
		case "10de":
			if haveNVIDIA {
				continue
			}
			gpu.Vendor = "NVIDIA"
			gpu.IsNVIDIA = true
		case "8086":
			gpu.Vendor = "Intel"
		case "1002":
			gpu.Vendor = "AMD"
		default:
			gpu.Vendor = "Unknown"
		}

		gpus = append(gpus, gpu)
		next++
	}
	return gpus
}

// Collect gathers the complete fact snapshot for one run.
func Collect(timeout int) (engine.Facts, []Note) {
	var notes []Note

	system, sysNotes := CollectSystem(timeout)
	notes = append(notes, sysNotes...)

	gpus, driver, gpuNotes := CollectGPUs(timeout)
	notes = append(notes, gpuNotes...)

	return engine.Facts{System: system, GPUs: gpus, Driver: driver}, notes
}
