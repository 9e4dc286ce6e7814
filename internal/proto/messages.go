// Package proto defines the zkauth.Auth wire contract: request and response
// messages, the CBOR codec that carries them over gRPC and the service
// descriptor shared by the server and the client.
package proto

// RegisterRequest carries the public commitment of a prover's secret.
type RegisterRequest struct {
	Identity string `cbor:"1,keyasint,omitempty"`
	Y1       []byte `cbor:"2,keyasint,omitempty"`
	Y2       []byte `cbor:"3,keyasint,omitempty"`
}

func (x *RegisterRequest) GetIdentity() string {
	if x != nil {
		return x.Identity
	}
	return ""
}

func (x *RegisterRequest) GetY1() []byte {
	if x != nil {
		return x.Y1
	}
	return nil
}

func (x *RegisterRequest) GetY2() []byte {
	if x != nil {
		return x.Y2
	}
	return nil
}

type RegisterResponse struct{}

// CreateChallengeRequest opens an authentication attempt with the prover's
// ephemeral commitment.
type CreateChallengeRequest struct {
	Identity string `cbor:"1,keyasint,omitempty"`
	R1       []byte `cbor:"2,keyasint,omitempty"`
	R2       []byte `cbor:"3,keyasint,omitempty"`
}

func (x *CreateChallengeRequest) GetIdentity() string {
	if x != nil {
		return x.Identity
	}
	return ""
}

func (x *CreateChallengeRequest) GetR1() []byte {
	if x != nil {
		return x.R1
	}
	return nil
}

func (x *CreateChallengeRequest) GetR2() []byte {
	if x != nil {
		return x.R2
	}
	return nil
}

type CreateChallengeResponse struct {
	ChallengeID string `cbor:"1,keyasint,omitempty"`
	Challenge   []byte `cbor:"2,keyasint,omitempty"`
}

func (x *CreateChallengeResponse) GetChallengeID() string {
	if x != nil {
		return x.ChallengeID
	}
	return ""
}

func (x *CreateChallengeResponse) GetChallenge() []byte {
	if x != nil {
		return x.Challenge
	}
	return nil
}

// VerifyResponseRequest answers a previously issued challenge.
type VerifyResponseRequest struct {
	ChallengeID string `cbor:"1,keyasint,omitempty"`
	Response    []byte `cbor:"2,keyasint,omitempty"`
}

func (x *VerifyResponseRequest) GetChallengeID() string {
	if x != nil {
		return x.ChallengeID
	}
	return ""
}

func (x *VerifyResponseRequest) GetResponse() []byte {
	if x != nil {
		return x.Response
	}
	return nil
}

type VerifyResponseResponse struct {
	SessionToken string `cbor:"1,keyasint,omitempty"`
}

func (x *VerifyResponseResponse) GetSessionToken() string {
	if x != nil {
		return x.SessionToken
	}
	return ""
}
