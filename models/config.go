package models

import (
	"github.com/learnhub/course-backend/db"
	"github.com/learnhub/course-backend/settings"
)

var settingsData = settings.GetSettings()

// MongoDB
var DbConnect = db.NewConnection(
	settingsData.MONGO_HOST,
	settingsData.MONGO_DB,
)
