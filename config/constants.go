package config

// Store identifiers used by the local databases of the client.
const (
	MessageDBName      = "message-db"
	RegistrationDBName = "registrationData"
	LocationDataDBName = "locationData"
)

// DeviceType is the label sent at signup, the backend binds it as "device/<DeviceType>".
const DeviceType = "Android Emulator"

// BackendURLKey names the environment variable holding the backend base url.
const BackendURLKey = "BACKENDURL"

// REST endpoint suffixes appended to the base url.
const (
	SignupPath = "/signup/"
	TopicPath  = "/topic"
)
