package transport

type CredentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type CreateCharacterRequest struct {
	Name     string `json:"name"`
	LastName string `json:"lastName"`
}

type PatchCharacterRequest struct {
	Name     *string `json:"name"`
	LastName *string `json:"lastName"`
}
