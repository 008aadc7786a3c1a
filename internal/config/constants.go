package config

const SourceFileExt = ".pakhi"

// ProjectFileName is looked up in the working directory when pakhi is run
// without a source file argument.
const ProjectFileName = "pakhi.yaml"

// GCThreshold is the allocation pressure (container slots plus elements and
// fields created since the last collection) at which the next statement
// boundary triggers a mark-and-sweep pass.
const GCThreshold = 1000

// Built-in function names. These are reserved: they intercept call
// evaluation before user-function lookup and can never be shadowed.
const (
	BuiltinToString    = "_স্ট্রিং"
	BuiltinToNum       = "_সংখ্যা"
	BuiltinListPush    = "_লিস্ট-পুশ"
	BuiltinListPop     = "_লিস্ট-পপ"
	BuiltinListLen     = "_লিস্ট-লেন"
	BuiltinReadLine    = "_রিড-লাইন"
	BuiltinError       = "_এরর"
	BuiltinStringSplit = "_স্ট্রিং-স্প্লিট"
	BuiltinStringJoin  = "_স্ট্রিং-জয়েন"
	BuiltinType        = "_টাইপ"
	BuiltinReadFile    = "_রিড-ফাইল"
	BuiltinWriteFile   = "_রাইট-ফাইল"
	BuiltinDeleteFile  = "_ডিলিট-ফাইল"
	BuiltinCreateDir   = "_নতুন-ডাইরেক্টরি"
	BuiltinReadDir     = "_রিড-ডাইরেক্টরি"
	BuiltinDeleteDir   = "_ডিলিট-ডাইরেক্টরি"
	BuiltinFileOrDir   = "_ফাইল-নাকি-ডাইরেক্টরি"
)

// Runtime type names returned by _টাইপ.
const (
	TypeNameNum      = "_সংখ্যা"
	TypeNameBool     = "_বুলিয়ান"
	TypeNameString   = "_স্ট্রিং"
	TypeNameList     = "_লিস্ট"
	TypeNameRecord   = "_রেকর্ড"
	TypeNameFunction = "_ফাং"
	TypeNameNil      = "_শূন্য"
)

// Boolean render literals.
const (
	TrueLiteral  = "সত্য"
	FalseLiteral = "মিথ্যা"
)

// Results of _ফাইল-নাকি-ডাইরেক্টরি.
const (
	StatFile = "ফাইল"
	StatDir  = "ডাইরেক্টরি"
)
