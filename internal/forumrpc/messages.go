package forumrpc

import (
	"github.com/dmitrijs2005/gophforum/internal/models"
	"google.golang.org/protobuf/encoding/protowire"
)

// Field numbers follow forum.proto.

type SignUpRequest struct {
	Email       string
	Password    string
	DisplayName string
}

func (m *SignUpRequest) appendWire(b []byte) []byte {
	b = appendString(b, 1, m.Email)
	b = appendString(b, 2, m.Password)
	return appendString(b, 3, m.DisplayName)
}

func (m *SignUpRequest) consumeWire(b []byte) error {
	return consumeFields(b, func(num protowire.Number, f wireField) error {
		switch num {
		case 1:
			m.Email = f.asString()
		case 2:
			m.Password = f.asString()
		case 3:
			m.DisplayName = f.asString()
		}
		return nil
	})
}

type SignUpResponse struct {
	User models.Principal
}

func (m *SignUpResponse) appendWire(b []byte) []byte {
	return appendMessage(b, 1, appendPrincipal(nil, m.User))
}

func (m *SignUpResponse) consumeWire(b []byte) error {
	return consumeFields(b, func(num protowire.Number, f wireField) error {
		if num == 1 && f.message() {
			return consumePrincipal(f.data, &m.User)
		}
		return nil
	})
}

type SignInRequest struct {
	Email    string
	Password string
}

func (m *SignInRequest) appendWire(b []byte) []byte {
	b = appendString(b, 1, m.Email)
	return appendString(b, 2, m.Password)
}

func (m *SignInRequest) consumeWire(b []byte) error {
	return consumeFields(b, func(num protowire.Number, f wireField) error {
		switch num {
		case 1:
			m.Email = f.asString()
		case 2:
			m.Password = f.asString()
		}
		return nil
	})
}

type SignInResponse struct {
	User         models.Principal
	AccessToken  string
	RefreshToken string
}

func (m *SignInResponse) appendWire(b []byte) []byte {
	b = appendMessage(b, 1, appendPrincipal(nil, m.User))
	b = appendString(b, 2, m.AccessToken)
	return appendString(b, 3, m.RefreshToken)
}

func (m *SignInResponse) consumeWire(b []byte) error {
	return consumeFields(b, func(num protowire.Number, f wireField) error {
		switch num {
		case 1:
			if f.message() {
				return consumePrincipal(f.data, &m.User)
			}
		case 2:
			m.AccessToken = f.asString()
		case 3:
			m.RefreshToken = f.asString()
		}
		return nil
	})
}

// empty is the encoding of a message without fields.
type empty struct{}

func (empty) appendWire(b []byte) []byte { return b }

func (empty) consumeWire(b []byte) error {
	return consumeFields(b, func(protowire.Number, wireField) error { return nil })
}

type SignOutRequest struct{ empty }

type SignOutResponse struct{ empty }

type GetUserRequest struct{ empty }

type GetUserResponse struct {
	User models.Principal
}

func (m *GetUserResponse) appendWire(b []byte) []byte {
	return appendMessage(b, 1, appendPrincipal(nil, m.User))
}

func (m *GetUserResponse) consumeWire(b []byte) error {
	return consumeFields(b, func(num protowire.Number, f wireField) error {
		if num == 1 && f.message() {
			return consumePrincipal(f.data, &m.User)
		}
		return nil
	})
}

type RefreshTokenRequest struct {
	RefreshToken string
}

func (m *RefreshTokenRequest) appendWire(b []byte) []byte {
	return appendString(b, 1, m.RefreshToken)
}

func (m *RefreshTokenRequest) consumeWire(b []byte) error {
	return consumeFields(b, func(num protowire.Number, f wireField) error {
		if num == 1 {
			m.RefreshToken = f.asString()
		}
		return nil
	})
}

type RefreshTokenResponse struct {
	AccessToken  string
	RefreshToken string
}

func (m *RefreshTokenResponse) appendWire(b []byte) []byte {
	b = appendString(b, 1, m.AccessToken)
	return appendString(b, 2, m.RefreshToken)
}

func (m *RefreshTokenResponse) consumeWire(b []byte) error {
	return consumeFields(b, func(num protowire.Number, f wireField) error {
		switch num {
		case 1:
			m.AccessToken = f.asString()
		case 2:
			m.RefreshToken = f.asString()
		}
		return nil
	})
}

// InsertThreadRequest carries the new thread. AuthorID is ignored by the
// server, which takes it from the access token.
type InsertThreadRequest struct {
	Thread models.Thread
}

func (m *InsertThreadRequest) appendWire(b []byte) []byte {
	return appendMessage(b, 1, appendThread(nil, m.Thread))
}

func (m *InsertThreadRequest) consumeWire(b []byte) error {
	return consumeFields(b, func(num protowire.Number, f wireField) error {
		if num == 1 && f.message() {
			return consumeThread(f.data, &m.Thread)
		}
		return nil
	})
}

type InsertThreadResponse struct {
	Thread models.Thread
}

func (m *InsertThreadResponse) appendWire(b []byte) []byte {
	return appendMessage(b, 1, appendThread(nil, m.Thread))
}

func (m *InsertThreadResponse) consumeWire(b []byte) error {
	return consumeFields(b, func(num protowire.Number, f wireField) error {
		if num == 1 && f.message() {
			return consumeThread(f.data, &m.Thread)
		}
		return nil
	})
}

type QueryThreadsRequest struct {
	Offset int
	Limit  int
}

func (m *QueryThreadsRequest) appendWire(b []byte) []byte {
	b = appendInt(b, 1, int64(m.Offset))
	return appendInt(b, 2, int64(m.Limit))
}

func (m *QueryThreadsRequest) consumeWire(b []byte) error {
	return consumeFields(b, func(num protowire.Number, f wireField) error {
		switch num {
		case 1:
			m.Offset = f.asInt32()
		case 2:
			m.Limit = f.asInt32()
		}
		return nil
	})
}

type QueryThreadsResponse struct {
	Threads []models.Thread
}

func (m *QueryThreadsResponse) appendWire(b []byte) []byte {
	for _, t := range m.Threads {
		b = appendMessage(b, 1, appendThread(nil, t))
	}
	return b
}

func (m *QueryThreadsResponse) consumeWire(b []byte) error {
	return consumeFields(b, func(num protowire.Number, f wireField) error {
		if num != 1 || !f.message() {
			return nil
		}
		var t models.Thread
		if err := consumeThread(f.data, &t); err != nil {
			return err
		}
		m.Threads = append(m.Threads, t)
		return nil
	})
}

type UploadRequest struct {
	Path        string
	ContentType string
	Data        []byte
}

func (m *UploadRequest) appendWire(b []byte) []byte {
	b = appendString(b, 1, m.Path)
	b = appendString(b, 2, m.ContentType)
	return appendBytes(b, 3, m.Data)
}

func (m *UploadRequest) consumeWire(b []byte) error {
	return consumeFields(b, func(num protowire.Number, f wireField) error {
		switch num {
		case 1:
			m.Path = f.asString()
		case 2:
			m.ContentType = f.asString()
		case 3:
			m.Data = f.asBytes()
		}
		return nil
	})
}

type UploadResponse struct {
	Path string
}

func (m *UploadResponse) appendWire(b []byte) []byte {
	return appendString(b, 1, m.Path)
}

func (m *UploadResponse) consumeWire(b []byte) error {
	return consumeFields(b, func(num protowire.Number, f wireField) error {
		if num == 1 {
			m.Path = f.asString()
		}
		return nil
	})
}

type PublicURLRequest struct {
	Path string
}

func (m *PublicURLRequest) appendWire(b []byte) []byte {
	return appendString(b, 1, m.Path)
}

func (m *PublicURLRequest) consumeWire(b []byte) error {
	return consumeFields(b, func(num protowire.Number, f wireField) error {
		if num == 1 {
			m.Path = f.asString()
		}
		return nil
	})
}

type PublicURLResponse struct {
	URL string
}

func (m *PublicURLResponse) appendWire(b []byte) []byte {
	return appendString(b, 1, m.URL)
}

func (m *PublicURLResponse) consumeWire(b []byte) error {
	return consumeFields(b, func(num protowire.Number, f wireField) error {
		if num == 1 {
			m.URL = f.asString()
		}
		return nil
	})
}
