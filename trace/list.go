package trace

// tool gtrace used from ./internal/cmd/gtrace

//go:generate gtrace

type (
	// List specified trace of linked list activity.
	// gtrace:gen
	List struct {
		// OnInsert fires on Append, Prepend and Insert.
		OnInsert func(ListInsertStartInfo) func(ListInsertDoneInfo)
		// OnDelete fires on DeleteFirst, DeleteLast, Delete and DeleteValue.
		OnDelete func(ListDeleteStartInfo) func(ListDeleteDoneInfo)
		// OnGet fires on First, Last and Get.
		OnGet  func(ListGetStartInfo) func(ListGetDoneInfo)
		OnFind func(ListFindStartInfo) func(ListFindDoneInfo)
	}

	call interface {
		FunctionID() string
	}

	ListInsertStartInfo struct {
		Call call
		// Loc is the requested location. Append and Prepend report the
		// location the element lands on.
		Loc    int
		Length int
	}
	ListInsertDoneInfo struct {
		Length int
		Error  error
	}
	ListDeleteStartInfo struct {
		Call call
		// Loc is the requested location, -1 for deletes by value.
		Loc    int
		Length int
	}
	ListDeleteDoneInfo struct {
		Length  int
		Removed bool
		Error   error
	}
	ListGetStartInfo struct {
		Call   call
		Loc    int
		Length int
	}
	ListGetDoneInfo struct {
		Error error
	}
	ListFindStartInfo struct {
		Call   call
		Length int
	}
	ListFindDoneInfo struct {
		// Loc is NotFound (-1) when nothing matched.
		Loc   int
		Error error
	}
)
