package config

import (
	_ "embed"
)

//go:embed defaults/memory.yaml
var defaultMemoryYAML []byte

//go:embed defaults/quiz.yaml
var defaultQuizYAML []byte

//go:embed defaults/messages.yaml
var defaultMessagesYAML []byte

//go:embed defaults/canvas.yaml
var defaultCanvasYAML []byte
