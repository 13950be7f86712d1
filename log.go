package huffman

import (
	"github.com/op/go-logging"
)

const loggerModule = "huffman"

var log = logging.MustGetLogger(loggerModule)

func init() {
	// Stay quiet under go-logging's default backend unless the caller
	// raises the level for this module.
	logging.SetLevel(logging.WARNING, loggerModule)
}
