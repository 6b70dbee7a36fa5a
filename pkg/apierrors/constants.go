package apierrors

const (
	MsgUnauthorized = "unauthorized"
	MsgInvalidID    = "invalidId"

	MsgInvalidTaskPayload = "invalidTaskPayload"
	MsgTaskNotFound       = "taskNotFound"
	MsgTaskForbidden      = "taskForbidden"
	MsgInvalidDateRange   = "invalidDateRange"
	MsgFailListTasks      = "failListTasks"
	MsgFailCreateTask     = "failCreateTask"
	MsgFailToggleTask     = "failToggleTask"
	MsgFailDeleteTask     = "failDeleteTask"
	MsgFailTaskStatistics = "failTaskStatistics"

	MsgInvalidExhibitPayload = "invalidExhibitPayload"
	MsgExhibitNotFound       = "exhibitNotFound"
	MsgExhibitPrivate        = "exhibitPrivate"
	MsgExhibitForbidden      = "exhibitForbidden"
	MsgShowAllForbidden      = "showAllForbidden"
	MsgSlugConflict          = "slugConflict"
	MsgFailListExhibits      = "failListExhibits"
	MsgFailCreateExhibit     = "failCreateExhibit"
	MsgFailUpdateExhibit     = "failUpdateExhibit"
	MsgFailDeleteExhibit     = "failDeleteExhibit"

	MsgInvalidCategoryPayload = "invalidCategoryPayload"
	MsgCategoryNotFound       = "categoryNotFound"
	MsgCategoryInUse          = "categoryInUse"
	MsgCategoryNameTaken      = "categoryNameTaken"
	MsgFailListCategories     = "failListCategories"
	MsgFailCreateCategory     = "failCreateCategory"
	MsgFailUpdateCategory     = "failUpdateCategory"
	MsgFailDeleteCategory     = "failDeleteCategory"

	MsgInvalidCommentPayload = "invalidCommentPayload"
	MsgCommentNotFound       = "commentNotFound"
	MsgCommentForbidden      = "commentForbidden"
	MsgFailListComments      = "failListComments"
	MsgFailCreateComment     = "failCreateComment"
	MsgFailDeleteComment     = "failDeleteComment"
)
