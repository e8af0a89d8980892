// Package domain はauthフィーチャーの永続化境界エラーを定義します。
package domain

import "errors"

// ストア（リポジトリ実装）が返すエラーです。
// usecase層はこれらを捕捉し、呼び出し元向けのエラー種別へ変換します。
var (
	// ErrUserAlreadyExists indicates that a user with the given email already exists.
	// This is returned by the store when a create hits the unique email index.
	ErrUserAlreadyExists = errors.New("user with this email already exists")

	// ErrUserNotFound indicates that no user matched the given criteria
	// (email, ID, or a valid unexpired reset token).
	ErrUserNotFound = errors.New("user not found")
)
