package retarget

// CopyWrist copies the root transform from reference into target. For the
// source layout the wrist bone below the root is copied as well.
func CopyWrist(reference Reader, target Sink, mode Mode) {
	copyBone(reference, target, 0)
	if mode == SourceNative {
		copyBone(reference, target, 1)
	}
}

func copyBone(from Reader, to Sink, i int) {
	if i >= from.Len() || i >= to.Len() {
		return
	}
	to.SetTransform(i, from.Transform(i))
}
