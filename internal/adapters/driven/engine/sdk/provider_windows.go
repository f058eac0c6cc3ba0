//go:build windows

package sdk

import (
	"context"
	"fmt"
	"sync"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/findlab/everfind/internal/core/domain"
	"github.com/findlab/everfind/internal/core/ports/driven"
)

// Request flags for Everything_SetRequestFlags, per the SDK header.
const (
	requestFileName     = 0x00000001
	requestPath         = 0x00000002
	requestSize         = 0x00000010
	requestDateCreated  = 0x00000020
	requestDateModified = 0x00000040
	requestDateAccessed = 0x00000080
	requestAttributes   = 0x00000100

	allRequestFlags = requestFileName | requestPath | requestSize |
		requestDateCreated | requestDateModified | requestDateAccessed |
		requestAttributes
)

// Sort identifiers for Everything_SetSort, per the SDK header.
const (
	sortNameAscending          = 1
	sortNameDescending         = 2
	sortPathAscending          = 3
	sortPathDescending         = 4
	sortSizeAscending          = 5
	sortSizeDescending         = 6
	sortDateModifiedAscending  = 13
	sortDateModifiedDescending = 14
)

// defaultMaxResults restores the SDK's unbounded window when the
// caller sets no cap, so a previous capped query cannot leak into the
// next one.
const defaultMaxResults = 0xFFFFFFFF

// invalidAttributes is the Win32 INVALID_FILE_ATTRIBUTES sentinel.
const invalidAttributes = 0xFFFFFFFF

// notLoadedPercent is the engine's documented status sentinel: the
// SDK cannot report live progress, only whether the database is
// loaded. Preserved as-is, not corrected.
const notLoadedPercent = 50

// Ensure Provider implements the interface.
var _ driven.Provider = (*Provider)(nil)

// Provider calls the engine's shared library in-process. The SDK's
// query state is process-global, so all calls are serialised behind
// the provider's mutex.
type Provider struct {
	cfg Config

	mu        sync.Mutex
	connected bool
	dll       *windows.DLL

	setSearch         *windows.Proc
	setMatchCase      *windows.Proc
	setMatchWholeWord *windows.Proc
	setRegex          *windows.Proc
	setMatchPath      *windows.Proc
	setMax            *windows.Proc
	setOffset         *windows.Proc
	setSort           *windows.Proc
	setRequestFlags   *windows.Proc
	query             *windows.Proc
	getNumResults     *windows.Proc
	getTotResults     *windows.Proc
	getResultFileName *windows.Proc
	getResultPath     *windows.Proc
	getResultSize     *windows.Proc
	getResultDateMod  *windows.Proc
	getResultDateCr   *windows.Proc
	getResultDateAcc  *windows.Proc
	getResultAttrs    *windows.Proc
	isFolderResult    *windows.Proc
	getMajorVersion   *windows.Proc
	getMinorVersion   *windows.Proc
	getRevision       *windows.Proc
	rebuildDB         *windows.Proc
	isDBLoaded        *windows.Proc
	getLastError      *windows.Proc
	cleanUp           *windows.Proc
}

// New creates a native transport provider. The library is loaded on
// Connect, not construction.
func New(cfg Config) *Provider {
	return &Provider{cfg: cfg}
}

// Type returns the transport identifier.
func (p *Provider) Type() string {
	return transportType
}

// Capabilities returns the transport's feature coverage.
func (p *Provider) Capabilities() driven.ProviderCapabilities {
	return capabilities(p.cfg.PollInterval)
}

// Connect loads the shared library and resolves the documented
// function table. Calling while connected is a no-op success.
func (p *Provider) Connect(_ context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.connectLocked()
}

func (p *Provider) connectLocked() error {
	if p.connected {
		return nil
	}

	dll, err := windows.LoadDLL(p.cfg.library())
	if err != nil {
		return &domain.ConnectionError{Transport: transportType, Cause: err}
	}

	var findErr error
	find := func(name string) *windows.Proc {
		if findErr != nil {
			return nil
		}
		proc, err := dll.FindProc(name)
		if err != nil {
			findErr = err
		}
		return proc
	}

	p.setSearch = find("Everything_SetSearchW")
	p.setMatchCase = find("Everything_SetMatchCase")
	p.setMatchWholeWord = find("Everything_SetMatchWholeWord")
	p.setRegex = find("Everything_SetRegex")
	p.setMatchPath = find("Everything_SetMatchPath")
	p.setMax = find("Everything_SetMax")
	p.setOffset = find("Everything_SetOffset")
	p.setSort = find("Everything_SetSort")
	p.setRequestFlags = find("Everything_SetRequestFlags")
	p.query = find("Everything_QueryW")
	p.getNumResults = find("Everything_GetNumResults")
	p.getTotResults = find("Everything_GetTotResults")
	p.getResultFileName = find("Everything_GetResultFileNameW")
	p.getResultPath = find("Everything_GetResultPathW")
	p.getResultSize = find("Everything_GetResultSize")
	p.getResultDateMod = find("Everything_GetResultDateModified")
	p.getResultDateCr = find("Everything_GetResultDateCreated")
	p.getResultDateAcc = find("Everything_GetResultDateAccessed")
	p.getResultAttrs = find("Everything_GetResultAttributes")
	p.isFolderResult = find("Everything_IsFolderResult")
	p.getMajorVersion = find("Everything_GetMajorVersion")
	p.getMinorVersion = find("Everything_GetMinorVersion")
	p.getRevision = find("Everything_GetRevision")
	p.rebuildDB = find("Everything_RebuildDB")
	p.isDBLoaded = find("Everything_IsDBLoaded")
	p.getLastError = find("Everything_GetLastError")
	p.cleanUp = find("Everything_CleanUp")

	if findErr != nil {
		_ = dll.Release()
		return &domain.ConnectionError{Transport: transportType, Cause: findErr}
	}

	p.dll = dll
	p.connected = true
	return nil
}

// Disconnect frees the engine's result list and unloads the library.
// It never fails and is safe to call when already disconnected.
func (p *Provider) Disconnect() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.connected {
		return nil
	}
	_, _, _ = p.cleanUp.Call()
	_ = p.dll.Release()
	p.dll = nil
	p.connected = false
	return nil
}

// IsConnected reports the connection state.
func (p *Provider) IsConnected() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.connected
}

// Search runs the query through the SDK, connecting implicitly if
// needed.
func (p *Provider) Search(_ context.Context, query string, opts domain.SearchOptions) ([]domain.SearchResult, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.connectLocked(); err != nil {
		return nil, err
	}

	q, err := windows.UTF16PtrFromString(query)
	if err != nil {
		return nil, &domain.SearchError{Transport: transportType, Cause: err}
	}

	_, _, _ = p.setSearch.Call(uintptr(unsafe.Pointer(q)))
	_, _, _ = p.setMatchCase.Call(boolArg(opts.MatchCase))
	_, _, _ = p.setMatchWholeWord.Call(boolArg(opts.MatchWholeWord))
	_, _, _ = p.setRegex.Call(boolArg(opts.Regex))
	_, _, _ = p.setMatchPath.Call(boolArg(opts.MatchPath))

	// Window and sort state persist inside the SDK between queries;
	// set them every time so one query cannot leak into the next.
	maxResults := uintptr(defaultMaxResults)
	if opts.MaxResults > 0 {
		maxResults = uintptr(opts.MaxResults)
	}
	_, _, _ = p.setMax.Call(maxResults)
	_, _, _ = p.setOffset.Call(uintptr(opts.Offset))
	_, _, _ = p.setSort.Call(uintptr(sortID(opts.SortBy, opts.SortAscending)))
	_, _, _ = p.setRequestFlags.Call(uintptr(allRequestFlags))

	if ok, _, _ := p.query.Call(1); ok == 0 {
		code, _, _ := p.getLastError.Call()
		return nil, &domain.SearchError{
			Transport: transportType,
			Cause:     fmt.Errorf("engine error code %d", code),
		}
	}

	n, _, _ := p.getNumResults.Call()
	results := make([]domain.SearchResult, 0, n)
	for i := uintptr(0); i < n; i++ {
		res, err := p.resultAt(i)
		if err != nil {
			return nil, &domain.SearchError{Transport: transportType, Cause: err}
		}
		results = append(results, res)
	}
	return results, nil
}

// resultAt reads one result slot through the per-index getters.
func (p *Provider) resultAt(i uintptr) (domain.SearchResult, error) {
	namePtr, _, _ := p.getResultFileName.Call(i)
	if namePtr == 0 {
		return domain.SearchResult{}, fmt.Errorf("result %d: engine returned no name", i)
	}

	res := domain.SearchResult{
		Name: windows.UTF16PtrToString((*uint16)(unsafe.Pointer(namePtr))),
	}
	if pathPtr, _, _ := p.getResultPath.Call(i); pathPtr != 0 {
		res.Path = windows.UTF16PtrToString((*uint16)(unsafe.Pointer(pathPtr)))
	}

	var size int64
	if ok, _, _ := p.getResultSize.Call(i, uintptr(unsafe.Pointer(&size))); ok != 0 && size > 0 {
		res.Size = size
	}

	res.DateModified = p.resultDate(p.getResultDateMod, i)
	res.DateCreated = p.resultDate(p.getResultDateCr, i)
	res.DateAccessed = p.resultDate(p.getResultDateAcc, i)

	if folder, _, _ := p.isFolderResult.Call(i); folder != 0 {
		res.IsDirectory = true
	}
	if attrs, _, _ := p.getResultAttrs.Call(i); uint32(attrs) != invalidAttributes {
		res.ApplyAttributes(uint32(attrs))
	}
	return res, nil
}

// resultDate reads one FILETIME getter and converts it through the
// shared epoch shift. A getter that reports no date yields 0.
func (p *Provider) resultDate(proc *windows.Proc, i uintptr) int64 {
	var ticks uint64
	if ok, _, _ := proc.Call(i, uintptr(unsafe.Pointer(&ticks))); ok == 0 {
		return 0
	}
	return domain.FiletimeToUnixMilli(ticks)
}

// Version assembles the engine version from the SDK's three numeric
// getters.
func (p *Provider) Version(_ context.Context) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.connectLocked(); err != nil {
		return "", err
	}

	major, _, _ := p.getMajorVersion.Call()
	minor, _, _ := p.getMinorVersion.Call()
	revision, _, _ := p.getRevision.Call()
	return fmt.Sprintf("%d.%d.%d", major, minor, revision), nil
}

// RebuildIndex signals the engine to rebuild its database. The call
// returns once the engine acknowledges, not once rebuilding
// completes.
func (p *Provider) RebuildIndex(_ context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.connectLocked(); err != nil {
		return err
	}

	if ok, _, _ := p.rebuildDB.Call(); ok == 0 {
		code, _, _ := p.getLastError.Call()
		return fmt.Errorf("sdk: rebuild index: engine error code %d", code)
	}
	return nil
}

// SearchStatus reports whether the database is loaded and a total
// entry count from a minimal wildcard query. A not-yet-loaded
// database reports the engine's fixed 50% sentinel: true progress is
// not obtainable through the SDK.
func (p *Provider) SearchStatus(_ context.Context) (domain.SearchStatus, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.connectLocked(); err != nil {
		return domain.SearchStatus{}, err
	}

	loaded, _, _ := p.isDBLoaded.Call()
	status := domain.SearchStatus{
		IndexingComplete: loaded != 0,
		PercentComplete:  notLoadedPercent,
	}
	if loaded != 0 {
		status.PercentComplete = 100
	}

	q, err := windows.UTF16PtrFromString("*")
	if err != nil {
		return domain.SearchStatus{}, fmt.Errorf("sdk: search status: %w", err)
	}
	_, _, _ = p.setSearch.Call(uintptr(unsafe.Pointer(q)))
	_, _, _ = p.setMax.Call(1)
	_, _, _ = p.setRequestFlags.Call(uintptr(requestFileName))
	if ok, _, _ := p.query.Call(1); ok != 0 {
		total, _, _ := p.getTotResults.Call()
		status.TotalResults = int(total)
	}
	return status, nil
}

func boolArg(b bool) uintptr {
	if b {
		return 1
	}
	return 0
}

// sortID maps the shared sort vocabulary onto the SDK's sort
// identifiers. Unknown fields fall back to name order.
func sortID(field domain.SortField, ascending bool) int {
	switch field {
	case domain.SortByPath:
		if ascending {
			return sortPathAscending
		}
		return sortPathDescending
	case domain.SortBySize:
		if ascending {
			return sortSizeAscending
		}
		return sortSizeDescending
	case domain.SortByDateModified:
		if ascending {
			return sortDateModifiedAscending
		}
		return sortDateModifiedDescending
	default:
		if ascending {
			return sortNameAscending
		}
		return sortNameDescending
	}
}
