package alfrusco

// Icon references an image shown next to an item. Path is either an
// image file, or with Type set, a file whose own icon ("fileicon") or
// UTI ("filetype") should be shown.
type Icon struct {
	Type string `json:"type,omitempty"`
	Path string `json:"path"`
}

// macOS system icons commonly used in workflow items.
const (
	IconRoot = "/System/Library/CoreServices/CoreTypes.bundle/Contents/Resources"

	IconAccount  = IconRoot + "/Accounts.icns"
	IconBurn     = IconRoot + "/BurningIcon.icns"
	IconClock    = IconRoot + "/Clock.icns"
	IconColor    = IconRoot + "/ProfileBackgroundColor.icns"
	IconEject    = IconRoot + "/EjectMediaIcon.icns"
	IconError    = IconRoot + "/AlertStopIcon.icns"
	IconFavorite = IconRoot + "/ToolbarFavoritesIcon.icns"
	IconGroup    = IconRoot + "/GroupIcon.icns"
	IconHelp     = IconRoot + "/HelpIcon.icns"
	IconHome     = IconRoot + "/HomeFolderIcon.icns"
	IconInfo     = IconRoot + "/ToolbarInfo.icns"
	IconNetwork  = IconRoot + "/GenericNetworkIcon.icns"
	IconNote     = IconRoot + "/AlertNoteIcon.icns"
	IconSettings = IconRoot + "/ToolbarAdvanced.icns"
	IconSwirl    = IconRoot + "/ErasingIcon.icns"
	IconSwitch   = IconRoot + "/General.icns"
	IconSync     = IconRoot + "/Sync.icns"
	IconTrash    = IconRoot + "/TrashIcon.icns"
	IconUser     = IconRoot + "/UserIcon.icns"
	IconWarning  = IconRoot + "/AlertCautionIcon.icns"
	IconWeb      = IconRoot + "/BookmarkIcon.icns"
)
