package badger

import "fmt"

// Key prefixes for different data types
const (
	previewPrefix = "preview"
	credentialKey = "cred:license"
)

// makePreviewKey generates a key for a cached preview by component id.
func makePreviewKey(componentID string) []byte {
	return []byte(fmt.Sprintf("%s:%s", previewPrefix, componentID))
}

// makeCredentialKey generates the key for the stored license credential.
func makeCredentialKey() []byte {
	return []byte(credentialKey)
}
