package collectors

import (
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/user/gpudoctor/pkg/engine"
)

// CollectSystem gathers the system portion of the fact snapshot. Every field
// degrades to "unknown" or zero when its source is unavailable.
func CollectSystem(timeout int) (engine.SystemInfo, []Note) {
	var notes []Note

	info := engine.SystemInfo{
		OSName:       runtime.GOOS,
		Architecture: runtime.GOARCH,
	}

	if hostname, err := os.Hostname(); err == nil {
		info.Hostname = hostname
	}

	info.OSVersion = collectOSVersion(timeout)
	info.CPUModel = collectCPUModel(timeout)
	info.RAMTotalMB = collectRAMTotalMB(timeout, &notes)

	return info, notes
}

func collectOSVersion(timeout int) string {
	var r CommandResult
	if runtime.GOOS == "windows" {
		r = RunCommand(timeout, "cmd", "/c", "ver")
	} else {
		r = RunCommand(timeout, "uname", "-r")
	}
	if r.Err != nil || r.Stdout == "" {
		return "unknown"
	}
	return r.Stdout
}

func collectCPUModel(timeout int) string {
	switch runtime.GOOS {
	case "windows":
		r := RunCommand(timeout, "powershell", "-NoProfile", "-Command",
			"(Get-CimInstance Win32_Processor).Name")
		if r.Err == nil && r.Stdout != "" {
			return r.Stdout
		}
	case "darwin":
		r := RunCommand(timeout, "sysctl", "-n", "machdep.cpu.brand_string")
		if r.Err == nil && r.Stdout != "" {
			return r.Stdout
		}
	default:
		if data, err := os.ReadFile("/proc/cpuinfo"); err == nil {
			for _, line := range strings.Split(string(data), "\n") {
				if strings.HasPrefix(line, "model name") {
					if _, v, ok := strings.Cut(line, ":"); ok {
						return strings.TrimSpace(v)
					}
				}
			}
		}
	}
	return "unknown"
}

func collectRAMTotalMB(timeout int, notes *[]Note) int64 {
	switch runtime.GOOS {
	case "windows":
		r := RunCommand(timeout, "powershell", "-NoProfile", "-Command",
			"(Get-CimInstance Win32_ComputerSystem).TotalPhysicalMemory")
		if r.Err == nil {
			if bytes, err := strconv.ParseInt(r.Stdout, 10, 64); err == nil {
				return bytes / (1024 * 1024)
			}
		}
	case "darwin":
		r := RunCommand(timeout, "sysctl", "-n", "hw.memsize")
		if r.Err == nil {
			if bytes, err := strconv.ParseInt(r.Stdout, 10, 64); err == nil {
				return bytes / (1024 * 1024)
			}
		}
	default:
		if data, err := os.ReadFile("/proc/meminfo"); err == nil {
			if kb := parseMemTotalKB(string(data)); kb > 0 {
				return kb / 1024
			}
		}
	}

	*notes = append(*notes, Note{Collector: "system.ram", Message: "could not determine total RAM"})
	return 0
}

// parseMemTotalKB extracts the MemTotal value (in kB) from /proc/meminfo
// content, returning 0 when absent.
func parseMemTotalKB(meminfo string) int64 {
	for _, line := range strings.Split(meminfo, "\n") {
		if !strings.HasPrefix(line, "MemTotal:") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) >= 2 {
			if kb, err := strconv.ParseInt(fields[1], 10, 64); err == nil {
				return kb
			}
		}
	}
	return 0
}
