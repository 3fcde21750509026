package mq

import (
	"context"

	"bigbazar/internal/model"
)

// TagReelImport tags messages carrying a webhook media id
const TagReelImport = "reel_import"

// ReelImportHandler is the handler for reel import messages
type ReelImportHandler func(ctx context.Context, msg *model.ReelImportMessage) error
