package terminal

// Color palette and theme used by the renderer. Maps semantic color names
// (like ColorNormalMode) to 256-color palette entries that both backends
// understand.

// To see the theme execute `king -colors`.

// Color is a foreground/background pair of palette entries. Entries are
// 1-based palette indexes; 0 means the terminal default.
type Color struct {
	Background int
	Foreground int
	Bold       bool
}

// ColorName is an enum-like type for semantic color identifiers.
type ColorName int

const (
	ColorDefault          ColorName = iota // Default terminal colors.
	ColorStatusBar                         // Main status bar above the prompt.
	ColorNormalMode                        // Status bar indicator for Normal mode.
	ColorInsertMode                        // Status bar indicator for Insert mode.
	ColorPromptMode                        // Status bar indicator for Prompt mode.
	ColorModified                          // The [+] marker.
	ColorEmptyLineMarker                   // The '~' marker for lines beyond EOF.
	ColorGutterLineNumber                  // Line numbers in the left gutter.
	ColorMessage                           // Informational prompt feedback.
	ColorError                             // Error prompt feedback.
	ColorDebugWindow                       // Overlay window for logs.
	ColorDebugTitle                        // Header for the debug window.
	ColorIntroTitle
	ColorIntroText
	ColorIntroKey
)

var colorNames = map[ColorName]string{
	ColorDefault:          "Default",
	ColorStatusBar:        "StatusBar",
	ColorNormalMode:       "NormalMode",
	ColorInsertMode:       "InsertMode",
	ColorPromptMode:       "PromptMode",
	ColorModified:         "Modified",
	ColorEmptyLineMarker:  "EmptyLineMarker",
	ColorGutterLineNumber: "GutterLineNumber",
	ColorMessage:          "Message",
	ColorError:            "Error",
	ColorDebugWindow:      "DebugWindow",
	ColorDebugTitle:       "DebugTitle",
	ColorIntroTitle:       "IntroTitle",
	ColorIntroText:        "IntroText",
	ColorIntroKey:         "IntroKey",
}

func (c ColorName) String() string {
	if s, ok := colorNames[c]; ok {
		return s
	}
	return "Unknown"
}

// Theme maps semantic names to colors.
type Theme map[ColorName]Color

// DefaultTheme is the built-in theme.
var DefaultTheme = Theme{
	ColorDefault:          {Background: 0, Foreground: 0},
	ColorStatusBar:        {Background: 237, Foreground: 253},
	ColorNormalMode:       {Background: 33, Foreground: 16, Bold: true},
	ColorInsertMode:       {Background: 41, Foreground: 16, Bold: true},
	ColorPromptMode:       {Background: 215, Foreground: 16, Bold: true},
	ColorModified:         {Background: 237, Foreground: 215},
	ColorEmptyLineMarker:  {Background: 0, Foreground: 240},
	ColorGutterLineNumber: {Background: 0, Foreground: 242},
	ColorMessage:          {Background: 0, Foreground: 253},
	ColorError:            {Background: 0, Foreground: 197, Bold: true},
	ColorDebugWindow:      {Background: 235, Foreground: 250},
	ColorDebugTitle:       {Background: 239, Foreground: 255, Bold: true},
	ColorIntroTitle:       {Background: 0, Foreground: 255, Bold: true},
	ColorIntroText:        {Background: 0, Foreground: 249},
	ColorIntroKey:         {Background: 0, Foreground: 255},
}

// Get returns the color for name, falling back to ColorDefault.
func (t Theme) Get(name ColorName) Color {
	if c, ok := t[name]; ok {
		return c
	}
	return t[ColorDefault]
}

// Names returns every color name in declaration order.
func Names() []ColorName {
	out := make([]ColorName, 0, len(colorNames))
	for c := ColorDefault; c <= ColorIntroKey; c++ {
		out = append(out, c)
	}
	return out
}
