package sysinfo

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// cpuSources reads the processor name per distribution, lscpu by default.
var cpuSources = map[Distro]func(*Run) string{
	MacOS:   sysctlCPU("machdep.cpu.brand_string"),
	FreeBSD: sysctlCPU("hw.model"),
}

func collectCPU(r *Run) (string, bool) {
	source, ok := cpuSources[r.Distro()]
	if !ok {
		source = lscpuCPU
	}
	return collapseSpaces(orUndetermined(source(r))), true
}

func sysctlCPU(name string) func(*Run) string {
	return func(r *Run) string {
		out, _ := r.Host.Cmd.Output("sysctl", "-n", name)
		return firstLine(out)
	}
}

func lscpuCPU(r *Run) string {
	if !r.Host.Cmd.Installed("lscpu") {
		return undetermined + " (lscpu not available)"
	}
	out, _ := r.Host.Cmd.Output("lscpu")
	return parseLscpu(out)
}

// parseLscpu builds "<model> @ <speed>" from lscpu output. ARM cores get
// their vendor prefixed, and the speed is skipped when the model already
// states one.
func parseLscpu(out string) string {
	var vendor, model, maxMHz string
	for _, line := range splitLines(out) {
		key, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		value = strings.TrimSpace(value)
		switch strings.TrimSpace(key) {
		case "Vendor ID":
			vendor = value
		case "Model name":
			model = value
		case "CPU max MHz":
			maxMHz = value
		}
	}

	cpu := model
	if vendor == "ARM" && !strings.Contains(model, "ARM") {
		cpu = strings.TrimSpace(vendor + " " + model)
	}
	if cpu != "" && !strings.Contains(cpu, "@") {
		if speed, ok := formatMHz(maxMHz); ok {
			cpu += " @ " + speed
		}
	}
	return cpu
}

// formatMHz renders a clock speed in MHz below 1000 and in GHz, rounded to
// two decimals, above.
func formatMHz(raw string) (string, bool) {
	mhz, err := strconv.ParseFloat(raw, 64)
	if err != nil || mhz <= 0 {
		return "", false
	}
	if mhz < 1000 {
		return strconv.FormatFloat(mhz, 'f', -1, 64) + " MHz", true
	}
	ghz, _ := strconv.ParseFloat(strconv.FormatFloat(mhz/1000, 'f', 2, 64), 64)
	return strconv.FormatFloat(ghz, 'f', -1, 64) + " GHz", true
}

// memory is a RAM reading in mebibytes.
type memory struct {
	used, total uint64
}

// ramSources reads memory usage per distribution, free by default.
var ramSources = map[Distro]func(*Run) (memory, bool){
	MacOS:   darwinMemory,
	FreeBSD: freeBSDMemory,
}

// collectRAM shows "<used> MB / <total> MB" with the used part colored by
// load.
func collectRAM(r *Run) (string, bool) {
	source, ok := ramSources[r.Distro()]
	if !ok {
		source = freeMemory
	}
	mem, ok := source(r)
	if !ok || mem.total == 0 {
		return undetermined, true
	}
	percent := math.Floor(float64(mem.used) / float64(mem.total) * 100)
	used := usageColor(percent, 50, 80).Sprintf("%d MB", mem.used)
	return fmt.Sprintf("%s / %d MB", used, mem.total), true
}

func freeMemory(r *Run) (memory, bool) {
	out, _ := r.Host.Cmd.Output("free", "-m")
	return parseFree(out)
}

// parseFree reads the "Mem:" row of `free -m`.
func parseFree(out string) (memory, bool) {
	for _, line := range splitLines(out) {
		fields := strings.Fields(line)
		if len(fields) < 3 || fields[0] != "Mem:" {
			continue
		}
		total, err1 := strconv.ParseUint(fields[1], 10, 64)
		used, err2 := strconv.ParseUint(fields[2], 10, 64)
		if err1 != nil || err2 != nil {
			return memory{}, false
		}
		return memory{used: used, total: total}, true
	}
	return memory{}, false
}

func darwinMemory(r *Run) (memory, bool) {
	out, _ := r.Host.Cmd.Output("sysctl", "-n", "hw.memsize")
	total, err := strconv.ParseUint(strings.TrimSpace(firstLine(out)), 10, 64)
	if err != nil {
		return memory{}, false
	}
	stat, _ := r.Host.Cmd.Output("vm_stat")
	used, ok := parseVMStat(stat)
	if !ok {
		return memory{}, false
	}
	return memory{used: used / (1 << 20), total: total / (1 << 20)}, true
}

// parseVMStat returns the bytes held by wired, active and compressed pages.
// The page size comes from the header line, 4096 when absent.
func parseVMStat(out string) (uint64, bool) {
	pageSize := uint64(4096)
	var pages uint64
	seen := false
	for _, line := range splitLines(out) {
		if _, rest, found := strings.Cut(line, "page size of "); found {
			if f := strings.Fields(rest); len(f) > 0 {
				if size, err := strconv.ParseUint(f[0], 10, 64); err == nil && size > 0 {
					pageSize = size
				}
			}
			continue
		}
		key, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		switch strings.TrimSpace(key) {
		case "Pages wired down", "Pages active", "Pages occupied by compressor":
			n, err := strconv.ParseUint(strings.TrimSuffix(strings.TrimSpace(value), "."), 10, 64)
			if err != nil {
				return 0, false
			}
			pages += n
			seen = true
		}
	}
	return pages * pageSize, seen
}

func freeBSDMemory(r *Run) (memory, bool) {
	sysctl := func(name string) (uint64, bool) {
		out, _ := r.Host.Cmd.Output("sysctl", "-n", name)
		n, err := strconv.ParseUint(strings.TrimSpace(firstLine(out)), 10, 64)
		return n, err == nil
	}
	physmem, ok1 := sysctl("hw.physmem")
	pageSize, ok2 := sysctl("hw.pagesize")
	inactive, ok3 := sysctl("vm.stats.vm.v_inactive_count")
	free, ok4 := sysctl("vm.stats.vm.v_free_count")
	cache, _ := sysctl("vm.stats.vm.v_cache_count")
	if !ok1 || !ok2 || !ok3 || !ok4 {
		return memory{}, false
	}
	total := physmem / (1 << 20)
	available := (inactive + free + cache) * pageSize / (1 << 20)
	if available > total {
		available = total
	}
	return memory{used: total - available, total: total}, true
}

// localFilesystems limits df to disks attached to this machine.
var localFilesystems = []string{
	"ext4", "ext3", "ext2", "reiserfs", "jfs", "ntfs", "fat32", "btrfs", "fuseblk", "xfs",
}

// collectDisk shows used and total capacity with the used part colored by
// load. FreeBSD offers no reliable source and the line is suppressed.
func collectDisk(r *Run) (string, bool) {
	switch r.Distro() {
	case FreeBSD:
		return "", false
	case MacOS:
		out, _ := r.Host.Cmd.Output("df", "-k")
		return parseDarwinDf(out), true
	}

	args := []string{"-Tlh", "--total"}
	for _, fs := range localFilesystems {
		args = append(args, "-t", fs)
	}
	out, _ := r.Host.Cmd.Output("df", args...)
	disk, ok := parseDfTotal(out)
	if !ok {
		return undetermined, true
	}
	return disk, true
}

// parseDarwinDf reports the first /dev/disk row of `df -k`.
func parseDarwinDf(out string) string {
	for _, line := range splitLines(out) {
		if !strings.HasPrefix(line, "/dev/disk") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 4 {
			continue
		}
		capacity, err1 := strconv.ParseUint(fields[1], 10, 64)
		available, err2 := strconv.ParseUint(fields[3], 10, 64)
		if err1 != nil || err2 != nil || capacity == 0 || available > capacity {
			continue
		}
		used := capacity - available
		percent := float64(used) / float64(capacity) * 100
		return fmt.Sprintf("%s / %s  (%.0f%%)",
			usageColor(percent, 70, 90).Sprint(FormatBytes(used*1024)),
			FormatBytes(capacity*1024), percent)
	}
	return "No disks found"
}

// parseDfTotal reads the "total" row that `df --total` prints last. Sizes
// are human-readable ("20G", "1.5T") and are kept as printed.
func parseDfTotal(out string) (string, bool) {
	lines := splitLines(out)
	if len(lines) == 0 {
		return "", false
	}
	fields := strings.Fields(lines[len(lines)-1])
	if len(fields) < 4 {
		return "", false
	}
	size, used := fields[2], fields[3]
	sizeBytes, err1 := humanize.ParseBytes(size)
	usedBytes, err2 := humanize.ParseBytes(used)
	if err1 != nil || err2 != nil || sizeBytes == 0 {
		return "", false
	}
	percent := float64(usedBytes) / float64(sizeBytes) * 100
	return fmt.Sprintf("%s / %s (%.0f%%)", usageColor(percent, 70, 90).Sprint(used), size, percent), true
}
