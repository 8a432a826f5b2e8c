package colony

const (
	SubjectPawnSnapshots = "colony.pawn.*.snapshot"
	SubjectPawnRemovals  = "colony.pawn.*.removed"
	SubjectItemSnapshots = "colony.item.*.snapshot"
	SubjectItemRemovals  = "colony.item.*.removed"

	StreamName   = "COLONY_EVENTS"
	StreamMaxAge = "168h" // 7 days
)

func SubjectPawnSnapshot(pawnID string) string { return "colony.pawn." + pawnID + ".snapshot" }
func SubjectPawnRemoved(pawnID string) string  { return "colony.pawn." + pawnID + ".removed" }
func SubjectItemSnapshot(itemID string) string { return "colony.item." + itemID + ".snapshot" }
func SubjectItemRemoved(itemID string) string  { return "colony.item." + itemID + ".removed" }

func SubjectRankResult(roleID string) string { return "colony.quartermaster.rank." + roleID }

func SubjectScanStats() string { return "colony.quartermaster.stats" }
