package model

import "fmt"

// MissionKind classifies a todo for reward purposes. The set is closed;
// ValidateMissionPolicies checks the tables below at startup.
type MissionKind string

const (
	MissionUserTodo     MissionKind = "USER_TODO"
	MissionDailyMission MissionKind = "DAILY_MISSION"
	MissionFreeMission  MissionKind = "FREE_MISSION"
)

// RewardKind selects which ledger field a grant lands on.
type RewardKind string

const (
	RewardExperience RewardKind = "EXPERIENCE"
	RewardNutrition  RewardKind = "NUTRITION"
)

// Default categories every user gets at registration.
const (
	CategoryDefaultName      = "일반"
	CategoryDailyMissionName = "일일 미션"
	CategoryFreeMissionName  = "자율 미션"

	CategoryDefaultColor      = "#000000"
	CategoryDailyMissionColor = "#FFC0CB"
	CategoryFreeMissionColor  = "#87CEEB"
)

// MissionPolicy is what completing a todo of a given kind pays out, and
// how many grants of that kind a user may collect per day.
type MissionPolicy struct {
	Reward     RewardKind
	Amount     int
	DailyLimit int
}

var missionPolicies = map[MissionKind]MissionPolicy{
	MissionUserTodo:     {Reward: RewardNutrition, Amount: 10, DailyLimit: 10},
	MissionDailyMission: {Reward: RewardExperience, Amount: 3, DailyLimit: 1},
	MissionFreeMission:  {Reward: RewardNutrition, Amount: 1, DailyLimit: 3},
}

var categoryMissions = map[string]MissionKind{
	CategoryDailyMissionName: MissionDailyMission,
	CategoryFreeMissionName:  MissionFreeMission,
}

// MissionFromCategory maps a category name to its mission kind. Names
// outside the two mission categories count as plain user todos.
func MissionFromCategory(categoryName string) MissionKind {
	if kind, ok := categoryMissions[categoryName]; ok {
		return kind
	}
	return MissionUserTodo
}

// Policy returns the payout policy for the kind.
func (k MissionKind) Policy() MissionPolicy {
	return missionPolicies[k]
}

// IsMissionCategory reports whether name is one of the protected mission
// categories that users cannot rename or delete.
func IsMissionCategory(name string) bool {
	_, ok := categoryMissions[name]
	return ok
}

// ValidateMissionPolicies is called once at bootstrap so a bad edit to the
// tables above fails fast instead of silently granting nothing.
func ValidateMissionPolicies() error {
	for _, kind := range []MissionKind{MissionUserTodo, MissionDailyMission, MissionFreeMission} {
		p, ok := missionPolicies[kind]
		if !ok {
			return fmt.Errorf("mission kind %s has no policy", kind)
		}
		if p.Reward != RewardExperience && p.Reward != RewardNutrition {
			return fmt.Errorf("mission kind %s has unknown reward kind %s", kind, p.Reward)
		}
		if p.Amount <= 0 {
			return fmt.Errorf("mission kind %s has non-positive amount %d", kind, p.Amount)
		}
		if p.DailyLimit <= 0 {
			return fmt.Errorf("mission kind %s has non-positive daily limit %d", kind, p.DailyLimit)
		}
	}
	for name, kind := range categoryMissions {
		if _, ok := missionPolicies[kind]; !ok {
			return fmt.Errorf("category %q maps to unknown mission kind %s", name, kind)
		}
	}
	return nil
}
