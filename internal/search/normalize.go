package search

// Normalize reshapes the typed output segments of one API response into
// a Result. The first message segment supplies the answer and its
// annotations; the first search call segment supplies the invocation
// record and raw hits. A response with no message segment yields the
// NoAnswer sentinel, not an error.
func Normalize(segments []Segment) Result {
	res := Result{Answer: NoAnswer}

	var haveMessage, haveCall bool
	for _, seg := range segments {
		switch s := seg.(type) {
		case MessageSegment:
			if haveMessage {
				continue
			}
			haveMessage = true
			res.Answer = s.Text
			res.Annotations = s.Annotations
			res.FilesUsed = filesUsed(s.Annotations)
		case SearchCallSegment:
			if haveCall {
				continue
			}
			haveCall = true
			call := s.Call
			res.Call = &call
			res.Hits = s.Hits
		}
	}
	return res
}

// ErrorResult folds a transport or API fault into a Result. Nothing
// else about the fault is preserved; the caller shows the message and
// lets the user resubmit.
func ErrorResult(err error) Result {
	return Result{Error: true, Message: err.Error()}
}

// filesUsed deduplicates annotation filenames preserving first-seen
// order in the original annotation sequence. Citation numbers in the
// answer text are derived from this ordering, so it must be
// deterministic for a given annotation list.
func filesUsed(anns []Annotation) []string {
	seen := make(map[string]struct{}, len(anns))
	var files []string
	for _, ann := range anns {
		if _, ok := seen[ann.Filename]; ok {
			continue
		}
		seen[ann.Filename] = struct{}{}
		files = append(files, ann.Filename)
	}
	return files
}
