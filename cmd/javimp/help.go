package main

const shortHelp = "Add or fix Java import statements using a list of known classes"

const longHelp = `javimp finds probable import statements for the classes a Java file uses
and writes them into the file.

Each file is compiled with javac; every class the compiler reports as
"cannot find symbol" is looked up by its simple name in the class list and
an import line is inserted at the top of the file.  When several classes
share the name, the first one (in lexicographic order) is imported and the
others are listed in a trailing comment.  Existing lines of the form
"import Name;" are expanded to the fully-qualified import; when ambiguous,
the alternatives are added as commented-out imports.

Run without files to rebuild the class list from the configured sources
(the Java standard library and Android API class indexes by default).

USAGE:
  javimp                                update the class list
  javimp File.java [OtherFile.java...]  resolve imports in place

OPTIONS:
  -h, --help  display this help message

ENVIRONMENT:
  JAVIMP_CONFIG         YAML config file (default: javimp.yaml next to the executable)
  JAVIMP_CLASS_LIST     class list path or URL (default: java_classes.list next to the executable)
  JAVIMP_JAVAC          compiler executable (default: javac)
  JAVIMP_OFFLINE        disable network class sources
  JAVIMP_AFTER_PACKAGE  insert imports after the package declaration
  JAVIMP_TIMEOUT        timeout for each class source fetch (default: 60s)
  JAVIMP_DEBUG          enable debug logging

The class list may be incomplete or contain erroneous entries; check the
imports that are written.
`
