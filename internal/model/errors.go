package model

import "errors"

var (
	ErrValidation         = errors.New("некорректные входные данные")
	ErrNotFound           = errors.New("фильм не найден")
	ErrConflict           = errors.New("фильм с таким названием и жанром уже существует")
	ErrInvalidCredentials = errors.New("неверный ключ или секрет")
	ErrMissingToken       = errors.New("токен не передан")
	ErrInvalidToken       = errors.New("невалидный токен")
	ErrForbidden          = errors.New("доступ запрещён")
	ErrSigningKeyMissing  = errors.New("не задан ключ подписи токенов")
)
