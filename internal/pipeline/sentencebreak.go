package pipeline

import "github.com/Bharath-Kumar-3231/gruut/internal/graph"

func isAncestorOrSelf(g *graph.Graph, ancestor, descendant graph.ID) bool {
	cur := descendant
	for {
		if cur == ancestor {
			return true
		}
		p, ok := g.Parent(cur)
		if !ok {
			return false
		}
		cur = p
	}
}

func indexOfID(ids []graph.ID, target graph.ID) int {
	for i, id := range ids {
		if id == target {
			return i
		}
	}
	return -1
}

// breakSentences runs after the pre-break split passes: every major
// BreakWord still inside an *implicit* Sentence bisects that sentence,
// moving the out-edges that follow the break to a freshly created sibling
// Sentence in the enclosing Paragraph. Explicit <s> sentences are never
// split.
func breakSentences(g *graph.Graph, root graph.ID) {
	leaves := g.Leaves(root)
	for _, leafID := range leaves {
		n := g.Node(leafID)
		if n == nil {
			continue
		}
		bw, ok := n.BreakWord()
		if !ok || bw.BreakType != graph.BreakMajor {
			continue
		}

		sentenceID, ok := g.Ancestor(leafID, func(nd *graph.Node) bool { return nd.IsSentence() })
		if !ok {
			continue
		}
		sentenceNode := g.Node(sentenceID)
		if sentenceNode == nil || !sentenceNode.Implicit {
			continue
		}

		paragraphID, ok := g.Ancestor(sentenceID, func(nd *graph.Node) bool { return nd.IsParagraph() })
		if !ok {
			continue
		}

		kids := g.Children(sentenceID)
		idx := -1
		for i, k := range kids {
			if isAncestorOrSelf(g, k, leafID) {
				idx = i
				break
			}
		}
		if idx == -1 || idx+1 >= len(kids) {
			continue
		}

		newSentenceID := g.AddNode(graph.Sentence{}, sentenceNode.Lang, sentenceNode.Voice, true)
		pkids := g.Children(paragraphID)
		pos := indexOfID(pkids, sentenceID)
		g.InsertEdgeAt(paragraphID, newSentenceID, pos+1)

		toMove := append([]graph.ID{}, kids[idx+1:]...)
		for _, c := range toMove {
			g.MoveEdge(c, newSentenceID)
		}
	}
}
