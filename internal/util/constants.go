package util

import "time"

// Cache key prefixes and TTLs.
const (
	LikeCountKeyPrefix  = "post:like_count:"
	RefreshTokenPrefix  = "refresh_token:"
	OAuthStatePrefix    = "oauth_state:"
	FollowerListPrefix  = "follow:followers:"
	FollowingListPrefix = "follow:followings:"

	OAuthStateTTL  = 10 * time.Minute
	FollowCacheTTL = time.Hour
)

// LikeSyncChunkSize is the batch write size of the nightly like
// reconciliation run.
const LikeSyncChunkSize = 100

// NutritionUseExperience is the experience granted when one nutrition
// point is consumed to water the plant.
const NutritionUseExperience = 30
