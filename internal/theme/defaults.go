package theme

// Defaults applied by the resolver when a field is unset.
const (
	DefaultBackgroundType  = BackgroundColor
	DefaultBackgroundColor = "#ffffff"
	DefaultFontFamily      = `-apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, "Helvetica Neue", Arial, sans-serif`

	DefaultProgressBarPosition        = PositionAbsolute
	DefaultProgressBarPlacement       = PlacementTop
	DefaultProgressBarColor           = "#0042DA"
	DefaultProgressBarBackgroundColor = "#e0edff"
	DefaultProgressBarThickness       = 4.0

	DefaultRoundness       = RoundnessMedium
	DefaultCustomRoundness = 6.0
	DefaultOpacity         = 1.0
	DefaultBlur            = 0.0

	DefaultContainerBackgroundColor = "transparent"
	DefaultContainerMaxWidth        = "800px"
	DefaultContainerMaxHeight       = "100%"

	// Text colour on a light container, and on a dark one.
	DefaultLightTextColor = "#303235"
	DefaultDarkTextColor  = "#FFFFFF"

	DefaultHostBubblesBackgroundColor  = "#F7F8FF"
	DefaultHostBubblesColor            = "#303235"
	DefaultGuestBubblesBackgroundColor = "#FF8E21"
	DefaultGuestBubblesColor           = "#FFFFFF"

	DefaultButtonsBackgroundColor = "#0042DA"
	DefaultButtonsColor           = "#FFFFFF"
	DefaultButtonsBorderThickness = 1.0

	DefaultInputsBackgroundColor  = "#FFFFFF"
	DefaultInputsColor            = "#303235"
	DefaultInputsPlaceholderColor = "#9095A0"
	DefaultInputsBorderColor      = "#e5e7eb"
	DefaultInputsBorderThickness  = 0.0

	// Transparent is the keyword that disables a background.
	Transparent = "transparent"
)
