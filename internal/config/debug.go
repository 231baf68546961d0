package config

import "os"

func IsDebug() bool {
	return os.Getenv("SECRETO_DEBUG") == "1"
}
