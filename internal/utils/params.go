package utils

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

func GetNoteID(ctx *gin.Context) (uint, error) {
	noteIDStr := ctx.Param("id")

	if noteIDStr == "" {
		return 0, errors.New("note id not found")
	}

	noteID, err := strconv.ParseUint(noteIDStr, 10, 32)

	if err != nil || noteID == 0 {
		return 0, errors.New("invalid note id")
	}

	return uint(noteID), nil
}
