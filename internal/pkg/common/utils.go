package common

import (
	"fmt"

	"github.com/google/uuid"
)

// GenerateUUID UUID を生成
func GenerateUUID() string {
	return uuid.New().String()
}

// GenerateDraftID 新規下書き用の ID を生成
func GenerateDraftID() string {
	return fmt.Sprintf("draft_%s", uuid.New().String())
}
