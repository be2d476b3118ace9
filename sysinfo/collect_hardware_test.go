package sysinfo

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const lscpuIntel = `Architecture:            x86_64
  CPU op-mode(s):        32-bit, 64-bit
Vendor ID:               GenuineIntel
  Model name:            Intel(R) Core(TM) i7-8550U CPU @ 1.80GHz
    CPU family:          6
    CPU max MHz:         4000.0000
`

const lscpuPi = `Architecture:        aarch64
Vendor ID:           ARM
Model name:          Cortex-A72
CPU max MHz:         1800.0000
CPU min MHz:         600.0000
`

func TestParseLscpu(t *testing.T) {
	assert.Equal(t, "Intel(R) Core(TM) i7-8550U CPU @ 1.80GHz", parseLscpu(lscpuIntel))
	assert.Equal(t, "ARM Cortex-A72 @ 1.8 GHz", parseLscpu(lscpuPi))
	assert.Equal(t, "AMD Ryzen 7 @ 3.97 GHz", parseLscpu("Model name: AMD Ryzen 7\nCPU max MHz: 3968.1\n"))
	assert.Equal(t, "Cortex-A53 @ 700 MHz", parseLscpu("Vendor ID: Broadcom\nModel name: Cortex-A53\nCPU max MHz: 700.0000\n"))
	assert.Equal(t, "", parseLscpu("Architecture: x86_64\n"))
}

func TestCollectCPU(t *testing.T) {
	h, cmd, _, _ := testHost(t)

	got, ok := collectCPU(testRun(h, Debian))
	assert.True(t, ok)
	assert.Equal(t, "Undetermined (lscpu not available)", got)

	cmd.on("lscpu", "Architecture: x86_64\n")
	got, _ = collectCPU(testRun(h, Debian))
	assert.Equal(t, "Undetermined", got)

	cmd.on("sysctl -n machdep.cpu.brand_string", "Intel(R) Core(TM)  i5-8257U CPU @ 1.40GHz\n")
	got, _ = collectCPU(testRun(h, MacOS))
	assert.Equal(t, "Intel(R) Core(TM) i5-8257U CPU @ 1.40GHz", got)

	cmd.on("sysctl -n hw.model", "AMD Ryzen 5 3600 6-Core Processor\n")
	got, _ = collectCPU(testRun(h, FreeBSD))
	assert.Equal(t, "AMD Ryzen 5 3600 6-Core Processor", got)
}

func TestCollectRAMFromFree(t *testing.T) {
	h, cmd, _, _ := testHost(t)
	cmd.on("free -m", `               total        used        free      shared  buff/cache   available
Mem:           15869        4521        6012         712        5335       10318
Swap:           2047           0        2047
`)

	got, ok := collectRAM(testRun(h, Arch))

	require.True(t, ok)
	assert.Equal(t, colorBoldGreen.Sprint("4521 MB")+" / 15869 MB", got)
}

func TestCollectRAMColors(t *testing.T) {
	tests := []struct {
		used string
		want string
	}{
		{"500", colorBoldGreen.Sprint("500 MB")},
		{"509", colorBoldGreen.Sprint("509 MB")},
		{"510", colorBoldYellow.Sprint("510 MB")},
		{"600", colorBoldYellow.Sprint("600 MB")},
		{"800", colorBoldRed.Sprint("800 MB")},
	}

	for _, tc := range tests {
		h, cmd, _, _ := testHost(t)
		cmd.on("free -m", "Mem: 1000 "+tc.used+" 0\n")

		got, _ := collectRAM(testRun(h, Debian))

		assert.Equal(t, tc.want+" / 1000 MB", got)
	}
}

func TestCollectRAMUndetermined(t *testing.T) {
	h, cmd, _, _ := testHost(t)

	got, _ := collectRAM(testRun(h, Debian))
	assert.Equal(t, "Undetermined", got)

	cmd.on("free -m", "Mem: 0 0 0\n")
	got, _ = collectRAM(testRun(h, Debian))
	assert.Equal(t, "Undetermined", got)
}

func TestCollectRAMDarwin(t *testing.T) {
	h, cmd, _, _ := testHost(t)
	cmd.on("sysctl -n hw.memsize", "17179869184\n").
		on("vm_stat", `Mach Virtual Memory Statistics: (page size of 16384 bytes)
Pages free:                               10000.
Pages active:                            200000.
Pages inactive:                          190000.
Pages wired down:                         56000.
Pages occupied by compressor:                 0.
`)

	got, _ := collectRAM(testRun(h, MacOS))

	// (200000 + 56000) pages of 16 KiB.
	assert.Equal(t, colorBoldGreen.Sprint("4000 MB")+" / 16384 MB", got)
}

func TestParseVMStatDefaultPageSize(t *testing.T) {
	used, ok := parseVMStat("Pages active: 256.\nPages wired down: 0.\n")
	assert.True(t, ok)
	assert.Equal(t, uint64(256*4096), used)

	_, ok = parseVMStat("Pages free: 5.\n")
	assert.False(t, ok)
}

func TestCollectRAMFreeBSD(t *testing.T) {
	h, cmd, _, _ := testHost(t)
	cmd.on("sysctl -n hw.physmem", "8589934592\n").
		on("sysctl -n hw.pagesize", "4096\n").
		on("sysctl -n vm.stats.vm.v_inactive_count", "262144\n").
		on("sysctl -n vm.stats.vm.v_free_count", "524288\n").
		on("sysctl -n vm.stats.vm.v_cache_count", "0\n")

	got, _ := collectRAM(testRun(h, FreeBSD))

	assert.Equal(t, colorBoldYellow.Sprint("5120 MB")+" / 8192 MB", got)
}

func TestCollectDiskLinux(t *testing.T) {
	h, cmd, _, _ := testHost(t)
	args := []string{"df", "-Tlh", "--total"}
	for _, fs := range localFilesystems {
		args = append(args, "-t", fs)
	}
	cmd.on(strings.Join(args, " "), `Filesystem     Type   Size  Used Avail Use% Mounted on
/dev/nvme0n1p2 ext4   468G  352G   93G  80% /
/dev/nvme0n1p1 vfat   511M  6.1M  505M   2% /boot/efi
total          -      469G  352G   94G  79% -
`)

	got, ok := collectDisk(testRun(h, Ubuntu))

	require.True(t, ok)
	assert.Equal(t, colorBoldYellow.Sprint("352G")+" / 469G (75%)", got)
}

func TestCollectDiskSuppressedOnFreeBSD(t *testing.T) {
	h, _, _, _ := testHost(t)

	_, ok := collectDisk(testRun(h, FreeBSD))

	assert.False(t, ok)
}

func TestCollectDiskUndetermined(t *testing.T) {
	h, _, _, _ := testHost(t)

	got, ok := collectDisk(testRun(h, Fedora))

	assert.True(t, ok)
	assert.Equal(t, "Undetermined", got)
}

func TestParseDfTotal(t *testing.T) {
	got, ok := parseDfTotal("total - 1.0T 950G 50G 95% -\n")
	require.True(t, ok)
	assert.Equal(t, colorBoldRed.Sprint("950G")+" / 1.0T (95%)", got)

	got, ok = parseDfTotal("total - 100G 10G 90G 10% -\n")
	require.True(t, ok)
	assert.Equal(t, colorBoldGreen.Sprint("10G")+" / 100G (10%)", got)

	_, ok = parseDfTotal("total - 0 0 0 - -\n")
	assert.False(t, ok)

	_, ok = parseDfTotal("")
	assert.False(t, ok)
}

func TestParseDarwinDf(t *testing.T) {
	out := `Filesystem    1024-blocks      Used Available Capacity iused     ifree %iused  Mounted on
/dev/disk1s5s1  488245288  15021348 322113676     5%  502068 3220991320    0%   /
devfs                 200       200         0   100%     692          0  100%   /dev
`

	got := parseDarwinDf(out)

	// 488245288 KiB capacity, 166131612 KiB used.
	assert.Equal(t, colorBoldGreen.Sprint("158.4 GB")+" / 465.6 GB  (34%)", got)
	assert.Equal(t, "No disks found", parseDarwinDf("devfs 200 200 0 100% /dev\n"))
}
