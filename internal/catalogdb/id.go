package catalogdb

import (
	"strconv"

	"github.com/google/uuid"
)

// Namespace seeds every derived id. It must never change, or re-seeding will
// duplicate rows instead of updating them.
var Namespace = uuid.MustParse("6f1c9c8e-3b0a-5d7e-9a57-2f4f0b6f7d21")

func v5(name string) uuid.UUID {
	return uuid.NewSHA1(Namespace, []byte(name))
}

func ProvinceID(externalID string) uuid.UUID {
	return v5("province:" + externalID)
}

func DistrictID(province uuid.UUID, externalID string) uuid.UUID {
	return v5("district:" + province.String() + ":" + externalID)
}

func RestaurantID(externalID int) uuid.UUID {
	return v5("restaurant:" + strconv.Itoa(externalID))
}
