package fatfs

// FileResult mirrors the FRESULT return codes of Chan's FatFs.
// The zero value means success; every other value is an error.
type FileResult uint

const (
	FileResultOK               FileResult = iota /* (0) Succeeded */
	FileResultErr                                /* (1) Hard error in the low level disk I/O layer */
	FileResultIntErr                             /* (2) Assertion failed */
	FileResultNotReady                           /* (3) The physical drive cannot work */
	FileResultNoFile                             /* (4) Could not find the file */
	FileResultNoPath                             /* (5) Could not find the path */
	FileResultInvalidName                        /* (6) The path name format is invalid */
	FileResultDenied                             /* (7) Access denied or directory full */
	FileResultExist                              /* (8) Access denied, object exists */
	FileResultInvalidObject                      /* (9) The file/directory object is invalid */
	FileResultWriteProtected                     /* (10) The physical drive is write protected */
	FileResultInvalidDrive                       /* (11) The logical drive number is invalid */
	FileResultNotEnabled                         /* (12) The volume has no work area */
	FileResultNoFilesystem                       /* (13) There is no valid FAT volume */
	FileResultMkfsAborted                        /* (14) Volume format was aborted */
	FileResultTimeout                            /* (15) Could not get a grant to access the volume */
	FileResultLocked                             /* (16) Rejected by the file sharing policy */
	FileResultNotEnoughCore                      /* (17) Working buffer could not be allocated */
	FileResultTooManyOpenFiles                   /* (18) Number of open files over the limit */
	FileResultInvalidParameter                   /* (19) Given parameter is invalid */

	FileResultReadOnly       FileResult = 99   // Read-only filesystem
	FileResultNotImplemented FileResult = 0xe0 // feature not implemented
)

func (r FileResult) Error() string {
	var msg string
	switch r {
	case FileResultErr:
		msg = "(1) A hard error occurred in the low level disk I/O layer"
	case FileResultIntErr:
		msg = "(2) Assertion failed"
	case FileResultNotReady:
		msg = "(3) The physical drive cannot work"
	case FileResultNoFile:
		msg = "(4) Could not find the file"
	case FileResultNoPath:
		msg = "(5) Could not find the path"
	case FileResultInvalidName:
		msg = "(6) The path name format is invalid"
	case FileResultDenied:
		msg = "(7) Access denied due to prohibited access or directory full"
	case FileResultExist:
		msg = "(8) Access denied due to prohibited access"
	case FileResultInvalidObject:
		msg = "(9) The file/directory object is invalid"
	case FileResultWriteProtected:
		msg = "(10) The physical drive is write protected"
	case FileResultInvalidDrive:
		msg = "(11) The logical drive number is invalid"
	case FileResultNotEnabled:
		msg = "(12) The volume has no work area"
	case FileResultNoFilesystem:
		msg = "(13) There is no valid FAT volume"
	case FileResultMkfsAborted:
		msg = "(14) The format operation aborted"
	case FileResultTimeout:
		msg = "(15) Could not get a grant to access the volume within defined period"
	case FileResultLocked:
		msg = "(16) The operation is rejected according to the file sharing policy"
	case FileResultNotEnoughCore:
		msg = "(17) Working buffer could not be allocated"
	case FileResultTooManyOpenFiles:
		msg = "(18) Too many open files"
	case FileResultInvalidParameter:
		msg = "(19) Given parameter is invalid"
	case FileResultReadOnly:
		msg = "(99) Read-only filesystem"
	case FileResultNotImplemented:
		msg = "(e0) Feature Not Implemented"
	default:
		msg = "unknown file result error"
	}
	return "fatfs: " + msg
}
