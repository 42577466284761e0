package pkg

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/pkg/errors"
)

type ResolverRequest struct {
	Headers    map[string]string `json:"headers"`
	DomainName *string           `json:"domainName"`
}

type ResolverInfo struct {
	FieldName           string         `json:"fieldName"`
	ParentTypeName      string         `json:"parentTypeName"`
	SelectionSetList    []string       `json:"selectionSetList"`
	SelectionSetGraphQL string         `json:"selectionSetGraphQL"`
	Variables           map[string]any `json:"variables"`
}

// ResolverPrev carries the previous pipeline function's result, which may be any JSON value.
type ResolverPrev struct {
	Result any `json:"result"`
}

// ResolverEvent is the payload AppSync hands to a direct Lambda resolver.
type ResolverEvent struct {
	Arguments map[string]any  `json:"arguments"`
	Identity  json.RawMessage `json:"identity"`
	Source    map[string]any  `json:"source"`
	Request   ResolverRequest `json:"request"`
	Prev      *ResolverPrev   `json:"prev"`
	Info      ResolverInfo    `json:"info"`
	Stash     map[string]any  `json:"stash"`

	raw json.RawMessage
}

var ErrNilEvent = errors.New("received nil event")

func ParseResolverEvent(raw []byte) (*ResolverEvent, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, ErrNilEvent
	}
	event := &ResolverEvent{}
	if err := json.Unmarshal(trimmed, event); err != nil {
		return nil, errors.Wrap(err, "unmarshal resolver event")
	}
	event.raw = append(json.RawMessage(nil), trimmed...)
	return event, nil
}

func (e *ResolverEvent) Raw() json.RawMessage {
	return e.raw
}

// RawJSON returns the original payload as compact JSON text, key order kept.
func (e *ResolverEvent) RawJSON() (string, error) {
	buf := &bytes.Buffer{}
	if err := json.Compact(buf, e.raw); err != nil {
		return "", errors.Wrap(err, "compact resolver event")
	}
	return buf.String(), nil
}

func (e *ResolverEvent) FieldName() string {
	return e.Info.FieldName
}

func (e *ResolverEvent) TypeName() string {
	return e.Info.ParentTypeName
}

func (e *ResolverEvent) HeaderValue(name string, defaultValue string, caseSensitive bool) string {
	if v, ok := e.Request.Headers[name]; ok {
		return v
	}
	if caseSensitive {
		return defaultValue
	}
	// lowest matching key wins so duplicate headers resolve the same way every time
	match := ""
	found := false
	for k := range e.Request.Headers {
		if strings.EqualFold(k, name) && (!found || k < match) {
			match, found = k, true
		}
	}
	if found {
		return e.Request.Headers[match]
	}
	return defaultValue
}

func (e *ResolverEvent) hasIdentity() bool {
	trimmed := bytes.TrimSpace(e.Identity)
	return len(trimmed) > 0 && !bytes.Equal(trimmed, []byte("null"))
}

// CognitoIdentity decodes identity for user pool and OIDC auth, which always carry sub and issuer.
func (e *ResolverEvent) CognitoIdentity() (*events.AppSyncCognitoIdentity, bool) {
	if !e.hasIdentity() {
		return nil, false
	}
	identity := &events.AppSyncCognitoIdentity{}
	if err := json.Unmarshal(e.Identity, identity); err != nil {
		return nil, false
	}
	if identity.Sub == "" || identity.Issuer == "" {
		return nil, false
	}
	return identity, true
}

func (e *ResolverEvent) IAMIdentity() (*events.AppSyncIAMIdentity, bool) {
	if !e.hasIdentity() {
		return nil, false
	}
	if _, ok := e.CognitoIdentity(); ok {
		return nil, false
	}
	identity := &events.AppSyncIAMIdentity{}
	if err := json.Unmarshal(e.Identity, identity); err != nil {
		return nil, false
	}
	if identity.AccountID == "" {
		return nil, false
	}
	return identity, true
}

// DecodeArguments converts the arguments map into v, usually a pointer to the field's input struct.
func (e *ResolverEvent) DecodeArguments(v any) error {
	b, err := json.Marshal(e.Arguments)
	if err != nil {
		return errors.Wrap(err, "marshal arguments")
	}
	if err = json.Unmarshal(b, v); err != nil {
		return errors.Wrap(err, "unmarshal arguments")
	}
	return nil
}
