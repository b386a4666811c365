package svcload

// Patch combines two LoadSpecs field by field. The base is the more specific,
// already-resolved spec; the overlay fills its gaps. An explicit base field
// is never overwritten. A defaulted or unset base field adopts the overlay's
// value and source when the overlay is explicit. When both carry built-in
// defaults the base keeps its value, so the outcome never depends on which
// default source happened to be applied last. Callers must therefore pass
// the higher-precedence spec as base; Patch is intentionally not commutative.
func Patch(base, overlay *LoadSpec) *LoadSpec {
	out := &LoadSpec{
		PkgIdent:            patchString(base.PkgIdent, overlay.PkgIdent),
		Channel:             patchString(base.Channel, overlay.Channel),
		BldrURL:             patchString(base.BldrURL, overlay.BldrURL),
		Group:               patchString(base.Group, overlay.Group),
		Topology:            patchString(base.Topology, overlay.Topology),
		Strategy:            patchString(base.Strategy, overlay.Strategy),
		UpdateCondition:     patchString(base.UpdateCondition, overlay.UpdateCondition),
		Binds:               patchStrings(base.Binds, overlay.Binds),
		BindingMode:         patchString(base.BindingMode, overlay.BindingMode),
		HealthCheckInterval: patchUint(base.HealthCheckInterval, overlay.HealthCheckInterval),
		ShutdownTimeout:     patchUint(base.ShutdownTimeout, overlay.ShutdownTimeout),
		Force:               patchBool(base.Force, overlay.Force),
		ConfigFrom:          patchString(base.ConfigFrom, overlay.ConfigFrom),
		RemoteSup:           patchString(base.RemoteSup, overlay.RemoteSup),
	}
	return out
}

func patchString(base, overlay StringValue) StringValue {
	if base.Source.Explicit() {
		return base
	}
	if overlay.Source.Explicit() {
		return overlay
	}
	if base.Source.IsSet() {
		return base
	}
	return overlay
}

func patchUint(base, overlay UintValue) UintValue {
	if base.Source.Explicit() {
		return base
	}
	if overlay.Source.Explicit() {
		return overlay
	}
	if base.Source.IsSet() {
		return base
	}
	return overlay
}

func patchBool(base, overlay BoolValue) BoolValue {
	if base.Source.Explicit() {
		return base
	}
	if overlay.Source.Explicit() {
		return overlay
	}
	if base.Source.IsSet() {
		return base
	}
	return overlay
}

func patchStrings(base, overlay StringsValue) StringsValue {
	chosen := base
	switch {
	case base.Source.Explicit():
	case overlay.Source.Explicit():
		chosen = overlay
	case base.Source.IsSet():
	default:
		chosen = overlay
	}
	// Copy the slice so the result shares no state with either operand.
	return StringsValue{
		Values: append([]string(nil), chosen.Values...),
		Source: chosen.Source,
	}
}
