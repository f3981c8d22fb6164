package resumedocx

import (
	"fmt"
	"sort"

	"github.com/vertekal/go-resume-docx/internal/assets"
)

// Badge describes one certification or clearance image: the key callers use
// to request it, the PNG asset it resolves to, and its rendered geometry in
// EMUs. TemplateX/TemplateY hold the exact offsets the branded template uses
// when the full default badge set is present; hasTemplatePos distinguishes
// builtin badges (which carry those offsets) from config-added ones.
type Badge struct {
	Key         string
	AssetName   string
	Description string
	WidthEMU    int64
	HeightEMU   int64

	TemplateX      int64
	TemplateY      int64
	hasTemplatePos bool
}

// Registry maps badge keys to image assets. It is built once at startup and
// read-only afterwards, so a single Registry is safe to share across calls.
type Registry struct {
	loader AssetLoader
	badges map[string]Badge
}

// builtinBadges is the statically complete default registry, geometry taken
// from the branded template.
var builtinBadges = []Badge{
	{
		Key: "csm", AssetName: "csm.png",
		Description: "Scrum Alliance CSM Certified",
		WidthEMU:    962025, HeightEMU: 838200,
		TemplateX: 4905375, TemplateY: 57150, hasTemplatePos: true,
	},
	{
		Key: "ts_sci", AssetName: "ts_sci.png",
		Description: "TS/SCI Clearance",
		WidthEMU:    723900, HeightEMU: 781050,
		TemplateX: 5848350, TemplateY: 95250, hasTemplatePos: true,
	},
	{
		Key: "aws_cloud_practitioner", AssetName: "aws_cloud_practitioner.png",
		Description: "AWS Cloud Practitioner",
		WidthEMU:    795478, HeightEMU: 795478,
		TemplateX: 3219450, TemplateY: 76200, hasTemplatePos: true,
	},
	{
		Key: "security_plus", AssetName: "security_plus.png",
		Description: "CompTIA Security+ Certified",
		WidthEMU:    822960, HeightEMU: 822960,
		TemplateX: 4076700, TemplateY: 57150, hasTemplatePos: true,
	},
}

// NewRegistry creates a Registry with the builtin badge set, resolving
// images through loader. A nil loader falls back to the embedded badge set.
func NewRegistry(loader AssetLoader) *Registry {
	if loader == nil {
		// NewAssetLoader with an empty dir can only fail on an invalid
		// directory, which an empty dir never is.
		loader, _ = NewAssetLoader("")
	}
	reg := &Registry{
		loader: loader,
		badges: make(map[string]Badge, len(builtinBadges)),
	}
	for _, b := range builtinBadges {
		reg.badges[b.Key] = b
	}
	return reg
}

// Add registers an additional badge. Existing keys are replaced, so config
// entries may also override builtin geometry.
func (r *Registry) Add(b Badge) error {
	if b.Key == "" {
		return fmt.Errorf("%w: empty key", ErrInvalidBadge)
	}
	if err := assets.ValidateAssetName(b.AssetName); err != nil {
		return fmt.Errorf("%w: badge %q: asset name %q", ErrInvalidBadge, b.Key, b.AssetName)
	}
	if b.WidthEMU <= 0 || b.HeightEMU <= 0 {
		return fmt.Errorf("%w: badge %q: non-positive extent", ErrInvalidBadge, b.Key)
	}
	r.badges[b.Key] = b
	return nil
}

// Known reports whether key is registered. Pure lookup, no asset I/O.
func (r *Registry) Known(key string) bool {
	_, ok := r.badges[key]
	return ok
}

// Keys returns all registered badge keys, sorted.
func (r *Registry) Keys() []string {
	keys := make([]string, 0, len(r.badges))
	for k := range r.badges {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Resolve looks up a badge and loads its image bytes.
// Returns ErrUnknownBadge for unregistered keys and ErrMissingAsset when a
// registered key's image cannot be loaded. Asset existence is checked here,
// at resolution time, so the registry itself can be statically complete.
func (r *Registry) Resolve(key string) (Badge, []byte, error) {
	badge, ok := r.badges[key]
	if !ok {
		return Badge{}, nil, fmt.Errorf("%w: %q", ErrUnknownBadge, key)
	}

	data, err := r.loader.LoadBadge(badge.AssetName)
	if err != nil {
		return Badge{}, nil, fmt.Errorf("resolving badge %q: %w", key, err)
	}
	return badge, data, nil
}
