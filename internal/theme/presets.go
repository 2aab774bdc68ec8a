package theme

import "sort"

// Presets maps preset names to constructors. Each call builds a fresh tree so
// callers may edit the result freely.
var Presets = map[string]func() *Theme{
	"default": newDefaultPreset,
	"dark":    newDarkPreset,
	"glass":   newGlassPreset,
	"minimal": newMinimalPreset,
}

// newDefaultPreset leaves every field unset so the resolver defaults apply.
func newDefaultPreset() *Theme {
	return &Theme{}
}

func newDarkPreset() *Theme {
	return &Theme{
		General: &GeneralTheme{
			Background: &Background{Type: Ptr(BackgroundColor), Content: Ptr("#171923")},
			Font:       &Font{Type: FontGoogle, Family: "Inter"},
		},
		Chat: &ChatTheme{
			Container: &ChatContainerTheme{
				ContainerTheme: ContainerTheme{
					BackgroundColor: Ptr("#1A202C"),
					Opacity:         Ptr(1.0),
					Shadow:          Ptr(ShadowLG),
					Border:          &Border{Roundness: Ptr(RoundnessLarge)},
				},
			},
			HostBubbles: &ContainerTheme{
				BackgroundColor: Ptr("#2D3748"),
				Color:           Ptr("#E2E8F0"),
			},
			GuestBubbles: &ContainerTheme{
				BackgroundColor: Ptr("#3182CE"),
				Color:           Ptr("#FFFFFF"),
			},
			Buttons: &ContainerTheme{
				BackgroundColor: Ptr("#3182CE"),
				Color:           Ptr("#FFFFFF"),
				Shadow:          Ptr(ShadowSM),
			},
			Inputs: &InputTheme{
				ContainerTheme: ContainerTheme{
					BackgroundColor: Ptr("#2D3748"),
					Color:           Ptr("#E2E8F0"),
					Border:          &Border{Thickness: Ptr(1.0), Color: Ptr("#4A5568")},
				},
				PlaceholderColor: Ptr("#718096"),
			},
		},
	}
}

func newGlassPreset() *Theme {
	return &Theme{
		General: &GeneralTheme{
			Background: &Background{
				Type:    Ptr(BackgroundImage),
				Content: Ptr("https://images.unsplash.com/photo-1557683316-973673baf926"),
			},
			ProgressBar: &ProgressBar{
				Position:  Ptr(PositionFixed),
				Placement: Ptr(PlacementBottom),
				Color:     Ptr("#FFFFFF"),
			},
		},
		Chat: &ChatTheme{
			Container: &ChatContainerTheme{
				ContainerTheme: ContainerTheme{
					BackgroundColor: Ptr("#FFFFFF"),
					Opacity:         Ptr(0.25),
					Blur:            Ptr(12.0),
					Shadow:          Ptr(ShadowXL),
					Border: &Border{
						Roundness:       Ptr(RoundnessCustom),
						CustomRoundness: Ptr(24.0),
						Thickness:       Ptr(1.0),
						Color:           Ptr("#FFFFFF"),
						Opacity:         Ptr(0.4),
					},
				},
			},
			HostBubbles: &ContainerTheme{
				BackgroundColor: Ptr("#FFFFFF"),
				Opacity:         Ptr(0.6),
				Blur:            Ptr(8.0),
			},
			GuestBubbles: &ContainerTheme{
				BackgroundColor: Ptr("#0042DA"),
				Opacity:         Ptr(0.8),
				Blur:            Ptr(8.0),
			},
		},
	}
}

func newMinimalPreset() *Theme {
	return &Theme{
		General: &GeneralTheme{
			Background: &Background{Type: Ptr(BackgroundNone)},
			Font:       &Font{Family: "Helvetica"},
		},
		Chat: &ChatTheme{
			Roundness: Ptr(RoundnessNone),
			HostBubbles: &ContainerTheme{
				BackgroundColor: Ptr(Transparent),
				Color:           Ptr("#111111"),
			},
			Buttons: &ContainerTheme{
				BackgroundColor: Ptr("#111111"),
				Border:          &Border{Thickness: Ptr(0.0)},
			},
		},
	}
}

// Default returns a fresh copy of the default preset.
func Default() *Theme {
	return newDefaultPreset()
}

// Get returns a fresh copy of the preset identified by name. If no preset
// with that name exists it falls back to the default preset.
func Get(name string) *Theme {
	if build, ok := Presets[name]; ok {
		return build()
	}
	return Default()
}

// Has reports whether a preset called name exists.
func Has(name string) bool {
	_, ok := Presets[name]
	return ok
}

// PresetNames returns the preset names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
