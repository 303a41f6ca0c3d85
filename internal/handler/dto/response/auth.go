package response

import "leadgate/internal/usecase/queries"

type LoginResponse struct {
	AccessToken string                          `json:"access_token"`
	Business    *queries.AuthorizedBusinessView `json:"business"`
}
