package configs

import _ "embed"

// ApplicationYAML holds the default application properties, used when PROPERTIES_FILE_PATH is unset.
//
//go:embed application.yml
var ApplicationYAML []byte

// MessagesYAML holds the default message catalogue, used when MESSAGES_FILE_PATH is unset.
//
//go:embed messages.yml
var MessagesYAML []byte
