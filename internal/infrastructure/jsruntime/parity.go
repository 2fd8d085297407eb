package jsruntime

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/bnema/themesync/internal/application/port"
	"github.com/bnema/themesync/internal/domain/entity"
	"github.com/bnema/themesync/internal/infrastructure/colorscheme"
	"github.com/bnema/themesync/internal/infrastructure/document"
	"github.com/bnema/themesync/internal/infrastructure/injector"
	"github.com/bnema/themesync/internal/infrastructure/persistence/memory"
)

// StoredCase is one state of the preference record.
type StoredCase struct {
	Label   string
	Value   string
	Present bool
	// Broken makes the read fail: a throwing store, or an undecodable cookie.
	Broken bool
	// Verbatim writes the cookie value without percent-encoding.
	Verbatim bool
}

// SystemCase is one state of the system preference.
type SystemCase struct {
	Label string
	// Dark is ignored when Unavailable is set.
	Dark        bool
	Unavailable bool
}

// ParityResult compares the script's outcome with entity.Resolve.
type ParityResult struct {
	Stored        StoredCase
	System        SystemCase
	Want          entity.EffectiveScheme
	Got           string
	CriticalStyle bool
	Meta          string
	Err           error
}

// OK reports whether the script agreed with the resolution rule.
func (r ParityResult) OK(contract entity.DocumentContract) bool {
	if r.Err != nil || r.Got != string(r.Want) {
		return false
	}
	style := contract.Style(r.Want)
	if r.CriticalStyle != (style.CriticalRules != "") {
		return false
	}
	return r.Meta == style.MetaColor
}

// StoredCases covers absent, valid, malformed and failing records.
func StoredCases() []StoredCase {
	return []StoredCase{
		{Label: "absent"},
		{Label: "light", Value: "light", Present: true},
		{Label: "dark", Value: "dark", Present: true},
		{Label: "system", Value: "system", Present: true},
		{Label: "empty", Value: "", Present: true},
		{Label: "wrong case", Value: "Dark", Present: true},
		{Label: "unknown", Value: "sepia", Present: true},
		{Label: "quoted", Value: `"dark"`, Present: true, Verbatim: true},
		{Label: "storage failure", Broken: true},
	}
}

// SystemCases covers both preferences and an unqueryable system.
func SystemCases() []SystemCase {
	return []SystemCase{
		{Label: "light"},
		{Label: "dark", Dark: true},
		{Label: "unavailable", Unavailable: true},
	}
}

// Expected applies the resolution rule to one input pair.
func Expected(contract entity.DocumentContract, stored StoredCase, system SystemCase) entity.EffectiveScheme {
	mode := contract.DefaultMode
	if stored.Present && !stored.Broken {
		if m, ok := entity.ParseThemeMode(stored.Value); ok {
			mode = m
		}
	}
	sys := entity.FallbackScheme
	if !system.Unavailable {
		sys = entity.SchemeFromDark(system.Dark)
	}
	return entity.Resolve(mode, sys)
}

// CheckParity runs the injector's script for every stored/system pair.
func CheckParity(ctx context.Context, inj *injector.Injector) []ParityResult {
	var results []ParityResult
	for _, stored := range StoredCases() {
		for _, system := range SystemCases() {
			results = append(results, runCase(ctx, inj, stored, system))
		}
	}
	return results
}

func runCase(ctx context.Context, inj *injector.Injector, stored StoredCase, system SystemCase) ParityResult {
	contract := inj.Contract()
	res := ParityResult{Stored: stored, System: system, Want: Expected(contract, stored, system)}

	doc := document.New()
	doc.AddMeta(contract.MetaName, "")
	env := Environment{Document: doc}

	switch inj.Backend() {
	case injector.BackendCookie:
		switch {
		case stored.Broken:
			env.Cookies = contract.StorageKey + "=%E0%A4%A"
		case stored.Present && stored.Verbatim:
			env.Cookies = "session=abc; " + contract.StorageKey + "=" + stored.Value
		case stored.Present:
			env.Cookies = "session=abc; " + contract.StorageKey + "=" + url.PathEscape(stored.Value)
		}
	default:
		if stored.Broken {
			env.Storage = failingStore{}
		} else {
			store := memory.NewPreferenceStore()
			if stored.Present {
				_ = store.Set(ctx, contract.StorageKey, stored.Value)
			}
			env.Storage = store
		}
	}

	if !system.Unavailable {
		env.System = colorscheme.NewResolver(colorscheme.NewStaticDetector(system.Dark))
	}

	if err := Run(ctx, inj.Script(), env); err != nil {
		res.Err = err
		return res
	}
	res.Got, _ = doc.Attribute(contract.ThemeAttribute)
	_, res.CriticalStyle = doc.ElementByID(contract.CriticalStyleID)
	res.Meta, _ = doc.Meta(contract.MetaName)
	if res.Got != "" && !doc.HasClass(res.Got) {
		res.Err = fmt.Errorf("root class does not match %s attribute", contract.ThemeAttribute)
	}
	return res
}

var errStoreUnavailable = errors.New("store unavailable")

type failingStore struct{}

var _ port.PreferenceStore = failingStore{}

func (failingStore) Get(context.Context, string) (string, bool, error) {
	return "", false, errStoreUnavailable
}

func (failingStore) Set(context.Context, string, string) error {
	return errStoreUnavailable
}
