package board

import "fmt"

// IssueType classifies a data integrity issue found by Check.
type IssueType string

const (
	IssueCountMismatch   IssueType = "count_mismatch"
	IssueDanglingCluster IssueType = "dangling_cluster"
	IssueDuplicateID     IssueType = "duplicate_id"
)

// Issue represents one integrity problem in the persisted moodboard.
type Issue struct {
	Type    IssueType
	ItemID  string
	Message string
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: %s - %s", i.ItemID, i.Type, i.Message)
}

// Check verifies the moodboard's integrity rules: every cluster's post
// count matches the posts referencing it, every post's cluster
// reference resolves, and ids are unique. A healthy board (or an absent
// one) yields no issues.
func (s *Store) Check() []Issue {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.board == nil {
		return nil
	}

	var issues []Issue
	m := s.board

	clusterIDs := make(map[string]bool, len(m.Clusters))
	for _, c := range m.Clusters {
		if clusterIDs[c.ID] {
			issues = append(issues, Issue{
				Type:    IssueDuplicateID,
				ItemID:  c.ID,
				Message: "duplicate cluster id",
			})
		}
		clusterIDs[c.ID] = true
	}

	postIDs := make(map[string]bool, len(m.Posts))
	refCounts := make(map[string]int, len(m.Clusters))
	for _, p := range m.Posts {
		if postIDs[p.ID] {
			issues = append(issues, Issue{
				Type:    IssueDuplicateID,
				ItemID:  p.ID,
				Message: "duplicate post id",
			})
		}
		postIDs[p.ID] = true

		if p.ClusterID == "" {
			continue
		}
		if !clusterIDs[p.ClusterID] {
			issues = append(issues, Issue{
				Type:    IssueDanglingCluster,
				ItemID:  p.ID,
				Message: fmt.Sprintf("post references missing cluster %s", p.ClusterID),
			})
			continue
		}
		refCounts[p.ClusterID]++
	}

	for _, c := range m.Clusters {
		if got := refCounts[c.ID]; got != c.PostCount {
			issues = append(issues, Issue{
				Type:    IssueCountMismatch,
				ItemID:  c.ID,
				Message: fmt.Sprintf("postCount is %d but %d posts reference the cluster", c.PostCount, got),
			})
		}
	}

	return issues
}

// Repair fixes the repairable issues Check reports: dangling cluster
// references are cleared and post counts are recomputed from the posts.
// Duplicate ids are reported by Check but cannot be auto-repaired.
// Returns the number of fixes applied.
func (s *Store) Repair() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.board == nil {
		return 0
	}

	next := s.board.Clone()
	fixes := 0

	clusterIDs := make(map[string]bool, len(next.Clusters))
	for _, c := range next.Clusters {
		clusterIDs[c.ID] = true
	}

	refCounts := make(map[string]int, len(next.Clusters))
	for i := range next.Posts {
		p := &next.Posts[i]
		if p.ClusterID == "" {
			continue
		}
		if !clusterIDs[p.ClusterID] {
			p.ClusterID = ""
			fixes++
			continue
		}
		refCounts[p.ClusterID]++
	}

	for i := range next.Clusters {
		c := &next.Clusters[i]
		if got := refCounts[c.ID]; got != c.PostCount {
			c.PostCount = got
			fixes++
		}
	}

	if fixes > 0 {
		s.commit(next)
	}
	return fixes
}
