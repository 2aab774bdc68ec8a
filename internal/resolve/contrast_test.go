package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sadopc/chatstyle/internal/theme"
)

func colorBg(hex string) *theme.Background {
	return &theme.Background{Type: theme.Ptr(theme.BackgroundColor), Content: theme.Ptr(hex)}
}

var imageBg = &theme.Background{Type: theme.Ptr(theme.BackgroundImage), Content: theme.Ptr("https://x/y.png")}

func TestCheckboxContrast(t *testing.T) {
	tests := []struct {
		name string
		snap ContainerSnapshot
		bg   *theme.Background
		want Checkbox
	}{
		{"translucent over image", ContainerSnapshot{"#ffffff", 0.1}, imageBg, Checkbox{"255, 255, 255, 0.75", "3"}},
		{"transparent over image", ContainerSnapshot{"transparent", 1}, imageBg, Checkbox{"255, 255, 255, 0.75", "3"}},
		{"transparent over dark", ContainerSnapshot{"transparent", 1}, colorBg("#000000"), Checkbox{"0, 0, 0", "2"}},
		{"transparent over light", ContainerSnapshot{"transparent", 1}, colorBg("#ffffff"), Checkbox{"255, 255, 255", "1"}},
		{"transparent over none", ContainerSnapshot{"transparent", 1}, &theme.Background{Type: theme.Ptr(theme.BackgroundNone)}, Checkbox{"255, 255, 255", "1"}},
		{"transparent over nothing", ContainerSnapshot{"transparent", 1}, nil, Checkbox{"255, 255, 255", "1"}},
		{"empty colour content", ContainerSnapshot{"", 1}, colorBg(""), Checkbox{"255, 255, 255", "1"}},
		{"opaque dark", ContainerSnapshot{"#000000", 1}, imageBg, Checkbox{"0, 0, 0, 1", "2"}},
		{"opaque light", ContainerSnapshot{"#ffffff", 0.5}, colorBg("#000000"), Checkbox{"255, 255, 255, 0.5", "1"}},
		{"at threshold", ContainerSnapshot{"#000000", 0.2}, colorBg("#ffffff"), Checkbox{"255, 255, 255", "1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CheckboxContrast(tt.snap, tt.bg))
		})
	}
}

func TestIsContainerLight(t *testing.T) {
	assert.True(t, IsContainerLight(ContainerSnapshot{"#ffffff", 1}, imageBg))
	assert.False(t, IsContainerLight(ContainerSnapshot{"#000000", 1}, colorBg("#ffffff")))
	assert.False(t, IsContainerLight(ContainerSnapshot{"transparent", 1}, imageBg))
	assert.True(t, IsContainerLight(ContainerSnapshot{"transparent", 1}, nil))
	assert.False(t, IsContainerLight(ContainerSnapshot{"#ffffff", 0.1}, colorBg("#101010")))
}

func TestContainerSnapshot(t *testing.T) {
	assert.True(t, ContainerSnapshot{"transparent", 1}.Disabled())
	assert.True(t, ContainerSnapshot{"  ", 1}.Disabled())
	assert.False(t, ContainerSnapshot{"#fff", 0.1}.Disabled())
	assert.True(t, ContainerSnapshot{"#fff", 0.1}.SeeThrough())
	assert.False(t, ContainerSnapshot{"#fff", 0.21}.SeeThrough())

	snap := snapshotOf(&theme.ChatContainerTheme{})
	assert.Equal(t, ContainerSnapshot{"transparent", 1}, snap)
}
