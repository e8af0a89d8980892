package dto

// SignInReq は/auth/signinエンドポイントのリクエストボディを表します。
// 必須フィールドとメール形式のバリデーションを含みます。
type SignInReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// SignInRes はサインイン成功時のレスポンスです。
type SignInRes struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Avatar      string `json:"avatar"`
	AccessToken string `json:"access_token"`
}
