package scoring

// GroupAnswers partitions answers by group key, preserving submission order
// both across groups (order of first appearance) and within each group.
// Answers without a group key belong to no scorable question and are left
// out entirely.
func GroupAnswers(answers []Answer) []Group {
	var groups []Group
	index := make(map[string]int)
	for _, a := range answers {
		if a.GroupKey == "" {
			continue
		}
		i, ok := index[a.GroupKey]
		if !ok {
			i = len(groups)
			index[a.GroupKey] = i
			groups = append(groups, Group{Key: a.GroupKey})
		}
		groups[i].Answers = append(groups[i].Answers, a)
	}
	return groups
}
