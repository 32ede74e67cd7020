package collectors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/gpudoctor/pkg/engine"
)

func TestParseSmiQuery(t *testing.T) {
	output := "0, NVIDIA GeForce RTX 4070, 551.86, 12282, 46\n" +
		"1, NVIDIA GeForce GTX 1050, 551.86, 2048, 71\n"

	gpus, driver := parseSmiQuery(output)
	require.Len(t, gpus, 2)
	assert.Equal(t, "551.86", driver)

	assert.Equal(t, 0, gpus[0].Index)
	assert.Equal(t, "NVIDIA GeForce RTX 4070", gpus[0].Name)
	assert.Equal(t, "NVIDIA", gpus[0].Vendor)
	assert.Equal(t, int64(12282), gpus[0].VRAMTotalMB)
	assert.Equal(t, 46, gpus[0].TemperatureC)
	assert.True(t, gpus[0].IsNVIDIA)

	assert.Equal(t, 1, gpus[1].Index)
	assert.Equal(t, int64(2048), gpus[1].VRAMTotalMB)
}

func TestParseSmiQueryDegradedValues(t *testing.T) {
	// [N/A] fields parse to zero, which downstream treats as unknown.
	output := "0, NVIDIA GeForce RTX 4070, 551.86, [N/A], [N/A]\n"

	gpus, driver := parseSmiQuery(output)
	require.Len(t, gpus, 1)
	assert.Equal(t, "551.86", driver)
	assert.Zero(t, gpus[0].VRAMTotalMB)
	assert.Zero(t, gpus[0].TemperatureC)
}

func TestParseSmiQueryEmptyAndGarbage(t *testing.T) {
	gpus, driver := parseSmiQuery("")
	assert.Empty(t, gpus)
	assert.Empty(t, driver)

	gpus, driver = parseSmiQuery("NVIDIA-SMI has failed because it couldn't communicate with the NVIDIA driver.\n")
	assert.Empty(t, gpus)
	assert.Empty(t, driver)
}

func TestParseCUDAVersion(t *testing.T) {
	header := "+---------------------------------------------------------------+\n" +
		"| NVIDIA-SMI 551.86       Driver Version: 551.86   CUDA Version: 12.4 |\n"

	assert.Equal(t, "12.4", parseCUDAVersion(header))
	assert.Equal(t, "", parseCUDAVersion("no cuda here"))
}

func TestParseLspci(t *testing.T) {
	output := `00:02.0 VGA compatible controller [0300]: Intel Corporation Raptor Lake-S UHD Graphics [8086:a780] (rev 04)
01:00.0 VGA compatible controller [0300]: NVIDIA Corporation AD104 [GeForce RTX 4070] [10de:2786] (rev a1)
02:00.0 Ethernet controller [0200]: Realtek Semiconductor Co. RTL8125 [10ec:8125]
`

	gpus := parseLspci(output, nil)
	require.Len(t, gpus, 2)

	assert.Equal(t, "Intel Corporation Raptor Lake-S UHD Graphics", gpus[0].Name)
	assert.Equal(t, "Intel", gpus[0].Vendor)
	assert.False(t, gpus[0].IsNVIDIA)

	assert.Equal(t, "NVIDIA Corporation AD104 [GeForce RTX 4070]", gpus[1].Name)
	assert.Equal(t, "NVIDIA", gpus[1].Vendor)
	assert.True(t, gpus[1].IsNVIDIA)
}

func TestParseLspciSkipsKnownNVIDIA(t *testing.T) {
	existing := []engine.GPUInfo{
		{Index: 0, Name: "NVIDIA GeForce RTX 4070", Vendor: "NVIDIA", IsNVIDIA: true},
	}
	output := `00:02.0 VGA compatible controller [0300]: Intel Corporation Raptor Lake-S UHD Graphics [8086:a780]
01:00.0 VGA compatible controller [0300]: NVIDIA Corporation AD104 [GeForce RTX 4070] [10de:2786]
`

	gpus := parseLspci(output, existing)
	require.Len(t, gpus, 1)
	assert.Equal(t, "Intel", gpus[0].Vendor)
	// Indexes continue after the already known devices.
	assert.Equal(t, 1, gpus[0].Index)
}

func TestParseLspci3DController(t *testing.T) {
	// Laptop dGPUs often enumerate as 3D controllers, not VGA.
	output := "01:00.0 3D controller [0302]: NVIDIA Corporation GA107M [GeForce RTX 3050 Mobile] [10de:25a2] (rev a1)\n"

	gpus := parseLspci(output, nil)
	require.Len(t, gpus, 1)
	assert.True(t, gpus[0].IsNVIDIA)
	assert.Equal(t, "NVIDIA Corporation GA107M [GeForce RTX 3050 Mobile]", gpus[0].Name)
}

func TestParseLspciUnknownVendor(t *testing.T) {
	output := "03:00.0 Display controller [0380]: Matrox Electronics Systems Ltd. G200eR2 [102b:0534]\n"

	gpus := parseLspci(output, nil)
	require.Len(t, gpus, 1)
	assert.Equal(t, "Unknown", gpus[0].Vendor)
	assert.False(t, gpus[0].IsNVIDIA)
}
