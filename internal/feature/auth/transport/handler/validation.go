package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validationMessage はGinのバインディングエラーをクライアント向けメッセージに変換します。
// フィールドごとのメッセージをセミコロンで連結した一つの文字列を返します。
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		// JSONの構文エラーなど、フィールド検証以外の失敗
		return "invalid request body"
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("field '%s' is required", fe.Field()))
		case "email":
			msgs = append(msgs, fmt.Sprintf("field '%s' must be a valid email address", fe.Field()))
		case "min":
			msgs = append(msgs, fmt.Sprintf("field '%s' must be at least %s characters long", fe.Field(), fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("field '%s' is invalid", fe.Field()))
		}
	}
	return strings.Join(msgs, ";")
}
