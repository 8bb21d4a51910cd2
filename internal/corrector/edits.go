package corrector

// alphabet used by replaces and inserts. Words are indexed by byte.
const alphabet = "abcdefghijklmnopqrstuvwxyz"

type split struct {
	left, right string
}

func splits(word string) []split {
	out := make([]split, 0, len(word)+1)
	for i := 0; i <= len(word); i++ {
		out = append(out, split{left: word[:i], right: word[i:]})
	}
	return out
}

func deletes(ss []split) []string {
	var out []string
	for _, s := range ss {
		if s.right != "" {
			out = append(out, s.left+s.right[1:])
		}
	}
	return out
}

func transposes(ss []split) []string {
	var out []string
	for _, s := range ss {
		if len(s.right) > 1 {
			out = append(out, s.left+string(s.right[1])+string(s.right[0])+s.right[2:])
		}
	}
	return out
}

func replaces(ss []split) []string {
	var out []string
	for _, s := range ss {
		if s.right == "" {
			continue
		}
		for i := 0; i < len(alphabet); i++ {
			out = append(out, s.left+alphabet[i:i+1]+s.right[1:])
		}
	}
	return out
}

func inserts(ss []split) []string {
	out := make([]string, 0, len(ss)*len(alphabet))
	for _, s := range ss {
		for i := 0; i < len(alphabet); i++ {
			out = append(out, s.left+alphabet[i:i+1]+s.right)
		}
	}
	return out
}

// edits1 returns every distinct string one delete, transpose, replace or insert away from word.
func edits1(word string) map[string]struct{} {
	ss := splits(word)
	set := make(map[string]struct{}, len(word)*54+26)
	for _, family := range [][]string{deletes(ss), transposes(ss), replaces(ss), inserts(ss)} {
		for _, w := range family {
			set[w] = struct{}{}
		}
	}
	return set
}

// expand returns the union of edits1 over every word in frontier.
func expand(frontier map[string]struct{}) map[string]struct{} {
	out := make(map[string]struct{}, len(frontier)*54)
	for w := range frontier {
		for e := range edits1(w) {
			out[e] = struct{}{}
		}
	}
	return out
}
