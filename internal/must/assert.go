package must

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
)

func Assert(cond bool, failMessage string) {
	if !cond {
		slog.Error(failMessage)
		os.Exit(1)
	}
}

func NoError(err error) {
	if err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}

func CastFloat64(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	NoError(err)
	return f
}
