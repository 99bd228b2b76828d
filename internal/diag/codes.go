package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка - на первое время
	UnknownCode Code = 0

	// Лексические
	LexInfo               Code = 1000
	LexUnmatchedDelimiter Code = 1001

	// Reload-совместимость
	ReloadInfo         Code = 3000
	ReloadParse        Code = 3001
	ReloadLength       Code = 3002
	ReloadIncompatible Code = 3003
	ReloadPath         Code = 3004
	ReloadIo           Code = 3005

	// Проектные (манифест, шаблонные файлы)
	PrjInfo            Code = 5000
	PrjManifestInvalid Code = 5001
	PrjTemplateMissing Code = 5002
)

var codeDescription = map[Code]string{
	UnknownCode:           "unknown error",
	LexInfo:               "tokenizer note",
	LexUnmatchedDelimiter: "unmatched open delimiter",
	ReloadInfo:            "reload note",
	ReloadParse:           "replacement template failed to parse",
	ReloadLength:          "replacement template has a different block count",
	ReloadIncompatible:    "replacement template block is incompatible",
	ReloadPath:            "template has no originating path",
	ReloadIo:              "failed to read replacement template",
	PrjInfo:               "project note",
	PrjManifestInvalid:    "invalid project manifest",
	PrjTemplateMissing:    "template file not found",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("RLD%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("PRJ%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[Code(0)]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
