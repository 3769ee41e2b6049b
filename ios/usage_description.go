package ios

const (
	NSPhotoLibraryUsageDescription = "NSPhotoLibraryUsageDescription"
	NSCameraUsageDescription       = "NSCameraUsageDescription"

	PhotoLibraryUsageDescription = "This app requires access to your photo library to select and upload images."
	CameraUsageDescription       = "This app requires access to your camera to take photos."
)

// UsageDescription is a privacy usage string that iOS shows
// when the app first asks for a sensitive permission.
type UsageDescription struct {
	Key   string
	Value string
}

// UsageDescriptions are set on every patched Info.plist.
var UsageDescriptions = []UsageDescription{
	{Key: NSPhotoLibraryUsageDescription, Value: PhotoLibraryUsageDescription},
	{Key: NSCameraUsageDescription, Value: CameraUsageDescription},
}
