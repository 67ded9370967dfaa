// Package identity verifies externally issued ID tokens for federated login.
package identity

import (
	"context"
	"errors"

	"github.com/sns-consultancy/Travel-Planner-Backend/internal/service"
	"google.golang.org/api/idtoken"
)

var errInvalidToken = errors.New("invalid id token")

// FirebaseVerifier validates Firebase ID tokens against the configured
// project id. Verification failures are collapsed into a single error so
// provider-internal detail never reaches callers.
type FirebaseVerifier struct {
	projectID string
}

func NewFirebaseVerifier(projectID string) *FirebaseVerifier {
	return &FirebaseVerifier{projectID: projectID}
}

func (v *FirebaseVerifier) Verify(ctx context.Context, token string) (service.FederatedIdentity, error) {
	payload, err := idtoken.Validate(ctx, token, v.projectID)
	if err != nil {
		return service.FederatedIdentity{}, errInvalidToken
	}

	id := service.FederatedIdentity{Subject: payload.Subject}
	if name, ok := payload.Claims["name"].(string); ok {
		id.Name = name
	}
	if email, ok := payload.Claims["email"].(string); ok {
		id.Email = email
	}
	if id.Subject == "" {
		return service.FederatedIdentity{}, errInvalidToken
	}

	return id, nil
}
