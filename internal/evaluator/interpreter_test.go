package evaluator

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pakhi-lang/pakhi/internal/ast"
	"github.com/pakhi-lang/pakhi/internal/diagnostics"
	"github.com/pakhi-lang/pakhi/internal/lexer"
	"github.com/pakhi-lang/pakhi/internal/parser"
	"github.com/pakhi-lang/pakhi/internal/pipeline"
)

func compile(t *testing.T, source string) *pipeline.Context {
	t.Helper()
	ctx := pipeline.NewContext(source)
	ctx.FilePath = "test.pakhi"
	pipeline.New(&lexer.LexerProcessor{}, &parser.ParserProcessor{}).Run(ctx)
	if len(ctx.Errors) > 0 {
		t.Fatalf("compile errors: %v", ctx.Errors)
	}
	return ctx
}

func run(t *testing.T, source string) string {
	t.Helper()
	out, err := tryRun(t, source)
	if err != nil {
		t.Fatalf("runtime error: %v", err)
	}
	return out
}

func tryRun(t *testing.T, source string) (string, *diagnostics.Error) {
	t.Helper()
	ctx := compile(t, source)
	var out bytes.Buffer
	ev := New(ctx.Statements)
	ev.Out = &out
	err := ev.Run()
	return out.String(), err
}

func wantError(t *testing.T, source string, kind diagnostics.Kind) {
	t.Helper()
	_, err := tryRun(t, source)
	if err == nil {
		t.Fatalf("expected a %v", kind)
	}
	if err.Kind != kind {
		t.Fatalf("got %v, want %v", err, kind)
	}
}

func TestPrint(t *testing.T) {
	tests := []struct {
		source string
		want   string
	}{
		{"দেখাও ৫;", "৫\n"},
		{"দেখাও ২.৫;", "২.৫\n"},
		{"দেখাও -৫;", "-৫\n"},
		{`দেখাও "হ্যালো";`, "হ্যালো\n"},
		{"দেখাও সত্য;", "সত্য\n"},
		{"দেখাও মিথ্যা;", "মিথ্যা\n"},
		{`_দেখাও "ক"; _দেখাও "খ";`, "কখ"},
	}
	for _, tt := range tests {
		if got := run(t, tt.source); got != tt.want {
			t.Errorf("%q: got %q, want %q", tt.source, got, tt.want)
		}
	}
}

func TestArithmetic(t *testing.T) {
	tests := []struct {
		source string
		want   string
	}{
		{"দেখাও ১ + ২ * ৩;", "৭\n"},
		{"দেখাও (১ + ২) * ৩;", "৯\n"},
		{"দেখাও ১০ / ৪;", "২.৫\n"},
		{"দেখাও ৭ % ৩;", "১\n"},
		{"দেখাও -(২ + ৩);", "-৫\n"},
		{"দেখাও ১ / ০;", "+Inf\n"},
	}
	for _, tt := range tests {
		if got := run(t, tt.source); got != tt.want {
			t.Errorf("%q: got %q, want %q", tt.source, got, tt.want)
		}
	}
}

func TestComparisonAndLogic(t *testing.T) {
	tests := []struct {
		source string
		want   string
	}{
		{"দেখাও ২ < ৩;", "সত্য\n"},
		{"দেখাও ২ >= ৩;", "মিথ্যা\n"},
		{"দেখাও ১ == ১;", "সত্য\n"},
		{`দেখাও "ক" != "খ";`, "সত্য\n"},
		{`দেখাও ১ == "১";`, "মিথ্যা\n"},
		{`দেখাও সত্য != ১;`, "সত্য\n"},
		{"দেখাও সত্য & মিথ্যা;", "মিথ্যা\n"},
		{"দেখাও সত্য | মিথ্যা;", "সত্য\n"},
		{"দেখাও !মিথ্যা;", "সত্য\n"},
	}
	for _, tt := range tests {
		if got := run(t, tt.source); got != tt.want {
			t.Errorf("%q: got %q, want %q", tt.source, got, tt.want)
		}
	}
}

func TestStringConcat(t *testing.T) {
	got := run(t, `দেখাও "হ্যালো " + "ওয়ার্ল্ড";`)
	if got != "হ্যালো ওয়ার্ল্ড\n" {
		t.Errorf("got %q", got)
	}
}

func TestBlockShadowing(t *testing.T) {
	source := `
নাম ক = ১;
{
	নাম ক = ২;
}
দেখাও ক;
`
	if got := run(t, source); got != "১\n" {
		t.Errorf("got %q, want %q", got, "১\n")
	}
}

func TestBlockAssignmentReachesOuter(t *testing.T) {
	source := `
নাম ক = ১;
{
	ক = ২;
}
দেখাও ক;
`
	if got := run(t, source); got != "২\n" {
		t.Errorf("got %q, want %q", got, "২\n")
	}
}

func TestListAliasing(t *testing.T) {
	source := `
নাম ক = [১০, ২০, ৩০];
নাম খ = ক;
খ[১] = ২০০;
দেখাও ক[১];
`
	if got := run(t, source); got != "২০০\n" {
		t.Errorf("got %q, want %q", got, "২০০\n")
	}
}

func TestListIndexTruncates(t *testing.T) {
	source := `
নাম ক = [১০, ২০, ৩০];
দেখাও ক[১.৯];
`
	if got := run(t, source); got != "২০\n" {
		t.Errorf("got %q, want %q", got, "২০\n")
	}
}

func TestNestedIndexedAssignment(t *testing.T) {
	source := `
নাম ক = [[১, ২], [৩, ৪]];
ক[১][০] = ৩০;
দেখাও ক[১][০];
`
	if got := run(t, source); got != "৩০\n" {
		t.Errorf("got %q, want %q", got, "৩০\n")
	}
}

func TestListConcatMakesFreshList(t *testing.T) {
	source := `
নাম ক = [১];
নাম খ = [২];
নাম গ = ক + খ;
গ[০] = ১০০;
দেখাও ক[০];
দেখাও _লিস্ট-লেন(গ);
`
	if got := run(t, source); got != "১\n২\n" {
		t.Errorf("got %q, want %q", got, "১\n২\n")
	}
}

func TestContainerEqualityIsByIdentity(t *testing.T) {
	source := `
নাম ক = [১];
নাম খ = [১];
নাম গ = ক;
দেখাও ক == খ;
দেখাও ক == গ;
`
	if got := run(t, source); got != "মিথ্যা\nসত্য\n" {
		t.Errorf("got %q", got)
	}
}

func TestRecordFieldAssignmentAndCreation(t *testing.T) {
	source := `
নাম র = @{"নাম" -> "পাখি"};
র["নাম"] = "দোয়েল";
র["রং"] = "কালো";
দেখাও র["নাম"];
দেখাও র["রং"];
`
	if got := run(t, source); got != "দোয়েল\nকালো\n" {
		t.Errorf("got %q", got)
	}
}

func TestRenderContainers(t *testing.T) {
	tests := []struct {
		source string
		want   string
	}{
		{`দেখাও [১, "ক", সত্য];`, "[১, \"ক\", সত্য]\n"},
		{`দেখাও [[১], [২]];`, "[[১], [২]]\n"},
		{`দেখাও @{"খ" -> ২, "ক" -> ১};`, "@{\"ক\" -> ১, \"খ\" -> ২}\n"},
		{`দেখাও [];`, "[]\n"},
	}
	for _, tt := range tests {
		if got := run(t, tt.source); got != tt.want {
			t.Errorf("%q: got %q, want %q", tt.source, got, tt.want)
		}
	}
}

func TestIfElse(t *testing.T) {
	source := `
যদি ২ > ৩ {
	দেখাও "ক";
} অথবা {
	দেখাও "খ";
}
`
	if got := run(t, source); got != "খ\n" {
		t.Errorf("got %q", got)
	}
}

func TestNestedIf(t *testing.T) {
	source := `
নাম ক = ৫;
যদি ক > ০ {
	যদি ক > ১০ {
		দেখাও "বড়";
	} অথবা {
		দেখাও "মাঝারি";
	}
} অথবা {
	দেখাও "ঋণাত্মক";
}
`
	if got := run(t, source); got != "মাঝারি\n" {
		t.Errorf("got %q", got)
	}
}

func TestLoopBreak(t *testing.T) {
	source := `
নাম ক = ০;
লুপ {
	ক = ক + ১;
	যদি ক == ৩ {
		থামাও;
	}
}
দেখাও ক;
`
	if got := run(t, source); got != "৩\n" {
		t.Errorf("got %q", got)
	}
}

func TestLoopContinue(t *testing.T) {
	source := `
নাম ক = ০;
নাম যোগ = ০;
লুপ {
	ক = ক + ১;
	যদি ক % ২ == ০ {
		আবার;
	}
	যোগ = যোগ + ক;
	যদি ক >= ৫ {
		থামাও;
	}
}
দেখাও যোগ;
`
	if got := run(t, source); got != "৯\n" {
		t.Errorf("got %q", got)
	}
}

func TestNestedLoops(t *testing.T) {
	source := `
নাম মোট = ০;
লুপ {
	লুপ {
		মোট = মোট + ১;
		থামাও;
	}
	যদি মোট == ৩ {
		থামাও;
	}
}
দেখাও মোট;
`
	if got := run(t, source); got != "৩\n" {
		t.Errorf("got %q", got)
	}
}

func TestBreakUnwindsBlockScopes(t *testing.T) {
	source := `
নাম ক = ০;
লুপ {
	নাম ভেতর = ১;
	যদি সত্য {
		থামাও;
	}
}
ক = ৭;
দেখাও ক;
`
	if got := run(t, source); got != "৭\n" {
		t.Errorf("got %q", got)
	}
}

func TestFunctionCall(t *testing.T) {
	source := `
ফাং দ্বিগুণ(ক) {
	ফেরত ক * ২;
}
দেখাও দ্বিগুণ(২১);
`
	if got := run(t, source); got != "৪২\n" {
		t.Errorf("got %q", got)
	}
}

func TestFunctionSeesGlobals(t *testing.T) {
	source := `
নাম ভিত্তি = ১০;
ফাং যোগফল(ক) {
	ফেরত ভিত্তি + ক;
}
দেখাও যোগফল(৫);
`
	if got := run(t, source); got != "১৫\n" {
		t.Errorf("got %q", got)
	}
}

func TestFunctionCannotSeeCallerLocals(t *testing.T) {
	source := `
ফাং প() {
	ফেরত গ;
}
{
	নাম গ = ১;
	দেখাও প();
}
`
	wantError(t, source, diagnostics.RuntimeError)
}

func TestRecursion(t *testing.T) {
	source := `
ফাং গণনা(ক) {
	যদি ক < ৫ {
		দেখাও ক;
		গণনা(ক + ১);
	}
}
গণনা(০);
`
	if got := run(t, source); got != "০\n১\n২\n৩\n৪\n" {
		t.Errorf("got %q", got)
	}
}

func TestFallthroughReturnsNil(t *testing.T) {
	source := `
ফাং কিছুনা() {
}
দেখাও _টাইপ(কিছুনা());
`
	if got := run(t, source); got != "_শূন্য\n" {
		t.Errorf("got %q", got)
	}
}

func TestMissingArgumentsBindNil(t *testing.T) {
	source := `
ফাং ট(ক) {
	ফেরত _টাইপ(ক);
}
দেখাও ট();
`
	if got := run(t, source); got != "_শূন্য\n" {
		t.Errorf("got %q", got)
	}
}

func TestExtraArgumentsAreDropped(t *testing.T) {
	source := `
ফাং প্রথম(ক) {
	ফেরত ক;
}
দেখাও প্রথম(১, ২, ৩);
`
	if got := run(t, source); got != "১\n" {
		t.Errorf("got %q", got)
	}
}

func TestReturnInsideLoop(t *testing.T) {
	source := `
ফাং খোঁজ(লক্ষ্য) {
	নাম ক = ০;
	লুপ {
		যদি ক == লক্ষ্য {
			ফেরত ক;
		}
		ক = ক + ১;
	}
}
দেখাও খোঁজ(৪);
দেখাও খোঁজ(২);
`
	if got := run(t, source); got != "৪\n২\n" {
		t.Errorf("got %q", got)
	}
}

func TestFunctionsAreValues(t *testing.T) {
	source := `
ফাং দ্বিগুণ(ক) {
	ফেরত ক * ২;
}
নাম অপর = দ্বিগুণ;
দেখাও অপর(৫);
`
	if got := run(t, source); got != "১০\n" {
		t.Errorf("got %q", got)
	}
}

func TestGarbageIsCollectedBetweenStatements(t *testing.T) {
	source := `
নাম ক = ০;
লুপ {
	নাম আবর্জনা = [১, ২, ৩, ৪, ৫];
	ক = ক + ১;
	যদি ক == ১০০ {
		থামাও;
	}
}
দেখাও ক;
`
	ctx := compile(t, source)
	var out bytes.Buffer
	ev := New(ctx.Statements)
	ev.Out = &out
	ev.GCThreshold = 20
	if err := ev.Run(); err != nil {
		t.Fatalf("runtime error: %v", err)
	}
	if out.String() != "১০০\n" {
		t.Fatalf("got %q", out.String())
	}
	if len(ev.heap.lists) > 50 {
		t.Errorf("arena grew to %d slots, collection is not reclaiming", len(ev.heap.lists))
	}
}

func TestLiveDataSurvivesCollection(t *testing.T) {
	source := `
নাম রাখা = [০];
নাম ক = ০;
লুপ {
	নাম আবর্জনা = [১, ২, ৩];
	রাখা[০] = ক;
	ক = ক + ১;
	যদি ক == ৫০ {
		থামাও;
	}
}
দেখাও রাখা[০];
`
	ctx := compile(t, source)
	var out bytes.Buffer
	ev := New(ctx.Statements)
	ev.Out = &out
	ev.GCThreshold = 10
	if err := ev.Run(); err != nil {
		t.Fatalf("runtime error: %v", err)
	}
	if out.String() != "৪৯\n" {
		t.Fatalf("got %q", out.String())
	}
}

func TestRuntimeErrors(t *testing.T) {
	tests := []struct {
		source string
		kind   diagnostics.Kind
	}{
		{"দেখাও অজানা;", diagnostics.RuntimeError},
		{"নাম ক; দেখাও ক;", diagnostics.RuntimeError},
		{"নাম ক = [১]; দেখাও ক[৫];", diagnostics.RuntimeError},
		{`নাম র = @{"ক" -> ১}; দেখাও র["খ"];`, diagnostics.RuntimeError},
		{"ক = ৫;", diagnostics.RuntimeError},
		{"ফেরত ৫;", diagnostics.RuntimeError},
		{"থামাও;", diagnostics.RuntimeError},
		{"আবার;", diagnostics.RuntimeError},
		{`_এরর("বুম");`, diagnostics.RuntimeError},
		{`দেখাও ১ + "ক";`, diagnostics.TypeError},
		{"দেখাও -সত্য;", diagnostics.TypeError},
		{"দেখাও !১;", diagnostics.TypeError},
		{"যদি ৫ { }", diagnostics.TypeError},
		{"দেখাও ৫(১);", diagnostics.TypeError},
		{`নাম ক = ৫; দেখাও ক["খ"];`, diagnostics.TypeError},
		{"ফাং ক() { } দেখাও ক;", diagnostics.TypeError},
	}
	for _, tt := range tests {
		_, err := tryRun(t, tt.source)
		if err == nil {
			t.Errorf("%q: expected a %v", tt.source, tt.kind)
			continue
		}
		if err.Kind != tt.kind {
			t.Errorf("%q: got %v, want %v", tt.source, err, tt.kind)
		}
	}
}

func TestUserErrorCarriesMessage(t *testing.T) {
	_, err := tryRun(t, `_এরর("ইচ্ছাকৃত");`)
	if err == nil || !strings.Contains(err.Message, "ইচ্ছাকৃত") {
		t.Fatalf("got %v", err)
	}
}

func TestErrorCarriesLineAndFile(t *testing.T) {
	_, err := tryRun(t, "নাম ক = ১;\nদেখাও অজানা;")
	if err == nil {
		t.Fatal("expected an error")
	}
	if err.Line != 2 || err.File != "test.pakhi" {
		t.Fatalf("got %s:%d", err.File, err.Line)
	}
}

func TestRenderSelfReferentialList(t *testing.T) {
	source := `
নাম ক = [১];
_লিস্ট-পুশ(ক, ক);
দেখাও ক;
`
	wantError(t, source, diagnostics.RuntimeError)
}

func TestRenderSelfReferentialRecord(t *testing.T) {
	source := `
নাম র = @{"ক" -> ১};
র["নিজ"] = র;
দেখাও র;
`
	wantError(t, source, diagnostics.RuntimeError)
}

func TestRenderMutuallyReferentialContainers(t *testing.T) {
	source := `
নাম ক = [];
নাম র = @{"লিস্ট" -> ক};
_লিস্ট-পুশ(ক, র);
দেখাও ক;
`
	wantError(t, source, diagnostics.RuntimeError)
}

func TestRenderSharedContainerIsNotACycle(t *testing.T) {
	source := `
নাম ভেতর = [১];
দেখাও [ভেতর, ভেতর];
`
	if got := run(t, source); got != "[[১], [১]]\n" {
		t.Errorf("got %q", got)
	}
}

func TestTruncatedStreamReportsUnexpectedError(t *testing.T) {
	stmts := []ast.Stmt{
		&ast.FuncDef{},
		&ast.Expression{Expr: &ast.Call{Callee: &ast.Var{Name: "ফ"}}},
		&ast.BlockStart{},
		&ast.EOS{},
	}
	ev := New(stmts)
	ev.Out = &bytes.Buffer{}

	err := ev.Run()
	if err == nil || err.Kind != diagnostics.UnexpectedError {
		t.Fatalf("got %v, want an UnexpectedError", err)
	}
}

func TestStreamWithoutSentinelReportsUnexpectedError(t *testing.T) {
	stmts := []ast.Stmt{&ast.Expression{Expr: &ast.NilLit{}}}
	ev := New(stmts)
	ev.Out = &bytes.Buffer{}

	err := ev.Run()
	if err == nil || err.Kind != diagnostics.UnexpectedError {
		t.Fatalf("got %v, want an UnexpectedError", err)
	}
}

func TestCallBodyWithoutReturnReportsUnexpectedError(t *testing.T) {
	stmts := []ast.Stmt{
		&ast.Expression{Expr: &ast.Call{Callee: &ast.Var{Name: "ফ"}}},
		&ast.EOS{},
		&ast.Expression{Expr: &ast.Call{Callee: &ast.Var{Name: "ফ"}}},
		&ast.BlockStart{},
		&ast.BlockEnd{},
	}
	ev := New(stmts)
	ev.Out = &bytes.Buffer{}
	ev.scopes.Bind("ফ", FuncValue(2))

	err := ev.Run()
	if err == nil || err.Kind != diagnostics.UnexpectedError {
		t.Fatalf("got %v, want an UnexpectedError", err)
	}
}

func TestReadLine(t *testing.T) {
	ctx := compile(t, `
নাম লাইন = _রিড-লাইন();
দেখাও লাইন + "!";
`)
	var out bytes.Buffer
	ev := New(ctx.Statements)
	ev.Out = &out
	ev.In = strings.NewReader("হ্যালো\nবাকি")
	if err := ev.Run(); err != nil {
		t.Fatalf("runtime error: %v", err)
	}
	if out.String() != "হ্যালো!\n" {
		t.Fatalf("got %q", out.String())
	}
}
