package value

// Merge deep-merges overlay onto base and returns a new tree; neither input is
// modified.
//
// When both sides are objects, every overlay key replaces or extends the base,
// recursing into nested objects. Void overlay entries (Null, or objects whose
// leaves are all void) keep the base. Any other pairing replaces base with
// overlay wholesale.
func Merge(base, overlay Value) Value {
	if IsVoid(overlay) {
		return base.clone()
	}

	if base.kind != KindObject || overlay.kind != KindObject {
		return overlay.clone()
	}

	merged := base.obj.Clone()

	overlay.obj.Range(func(key string, ov Value) bool {
		if IsVoid(ov) {
			return true
		}

		if bv, ok := merged.Get(key); ok {
			merged.Set(key, Merge(bv, ov))
		} else {
			merged.Set(key, ov.clone())
		}

		return true
	})

	return FromObject(merged)
}

// IsVoid reports whether v carries no data: Null, or an object in which every
// value is itself void. Empty objects are void; empty lists are not.
func IsVoid(v Value) bool {
	switch v.kind {
	case KindNull:
		return true
	case KindObject:
		void := true

		v.obj.Range(func(_ string, item Value) bool {
			void = IsVoid(item)

			return void
		})

		return void
	default:
		return false
	}
}
