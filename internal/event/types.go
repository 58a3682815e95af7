// internal/event/types.go
package event

const (
	EnemyKilled   EventType = "EnemyKilled"   // enemy died, bounty credited
	EnemyLeaked   EventType = "EnemyLeaked"   // enemy reached the end, life lost
	WaveStarted   EventType = "WaveStarted"
	WaveEnded     EventType = "WaveEnded"
	TowerPlaced   EventType = "TowerPlaced"
	TowerUpgraded EventType = "TowerUpgraded"
	GameOver      EventType = "GameOver"
	GameWon       EventType = "GameWon"
)
