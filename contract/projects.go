package contract

// -----------------------------------------------------------------------------
// Project Registry
// -----------------------------------------------------------------------------

// RegisterProject creates a project record with zero votes, area and grants.
// The id must be unused for the lifetime of the ledger; owner, name and round
// stamp are immutable afterwards. The first registration ever stamps the
// round counter to 1 (the counter is never reset after that).
//
// Example payload: RegisterProject(strptr("ab..ef|my project"))
func RegisterProject(payload *string) *string {
	args := decodeRegisterArgs(payload)
	caller := getSenderAddress()

	id := args.Id
	if id.IsZero() {
		id = DeriveProjectId(caller, args.Name)
	}
	if projectExists(id) {
		abortWith(errDuplicateProject)
	}

	if currentRound() == 0 {
		setRound(1)
	}

	prj := Project{
		Owner: caller,
		Name:  args.Name,
		Round: currentRound(),
	}
	saveProject(id, &prj)
	addProjectToIndex(id)
	emitProjectRegistered(id, caller)
	return strptr(id.String())
}

// GetProject returns the serialized project record, nil when unknown.
// Read-only, no side effects.
//
// Example payload: GetProject(strptr("ab..ef"))
func GetProject(payload *string) *string {
	id := decodeProjectIdArg(payload)
	ptr := getState().Get(projectKey(id))
	if ptr == nil || *ptr == "" {
		return nil
	}
	return ptr
}
