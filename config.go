package navroute

import "maps"

// Params is the caller-supplied parameter record for a route. The factory
// copies it on construction, so a Route never aliases caller-owned state.
type Params map[string]any

func (p Params) clone() Params {
	if p == nil {
		return Params{}
	}
	return maps.Clone(p)
}

// merged returns p with overrides laid over it: keys in overrides win,
// unspecified keys are preserved. Neither input is modified.
func (p Params) merged(overrides Params) Params {
	out := p.clone()
	maps.Copy(out, overrides)
	return out
}

// Config is a route's merged configuration record. Aside from fields that
// intentionally hold callables (such as a dynamic title provider), values are
// plain data after the merge pipeline completes.
type Config map[string]any

func (c Config) clone() Config {
	if c == nil {
		return Config{}
	}
	return maps.Clone(c)
}

// section returns the nested record under key, tolerating both Config and
// plain map values. Returns nil when the key is absent or not a record.
func (c Config) section(key string) Config {
	switch v := c[key].(type) {
	case Config:
		return v
	case map[string]any:
		return v
	default:
		return nil
	}
}

// shallowMerge lays overrides over base, overrides winning per key. Base is
// modified in place and returned.
func shallowMerge(base Config, overrides Config) Config {
	maps.Copy(base, overrides)
	return base
}

// deepMerge recursively merges overrides into base. Nested records merge
// key-by-key; any other override value replaces the base value outright.
// Base is modified in place and returned.
func deepMerge(base Config, overrides Config) Config {
	for key, ov := range overrides {
		ovRec, ovOK := asRecord(ov)
		baseRec, baseOK := asRecord(base[key])
		if ovOK && baseOK {
			base[key] = deepMerge(baseRec.clone(), ovRec)
			continue
		}
		base[key] = ov
	}
	return base
}

func asRecord(v any) (Config, bool) {
	switch m := v.(type) {
	case Config:
		return m, true
	case map[string]any:
		return m, true
	default:
		return nil, false
	}
}
