package utils

import (
	"github.com/sirupsen/logrus"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func PrettyJson(in any) string {
	if raw, ok := in.([]byte); ok {
		var v any
		if err := json.Unmarshal(raw, &v); err != nil {
			return string(raw)
		}
		in = v
	}

	out, err := json.MarshalIndent(in, "", "  ")
	if err != nil {
		logrus.WithError(err).Warn("utils: falha ao serializar json")
		return ""
	}

	return string(out)
}
