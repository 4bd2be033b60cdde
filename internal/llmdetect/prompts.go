package llmdetect

const classSystemPrompt = `You are a code quality classifier. You are given a Java class and must answer with exactly one label:
0 - no smell
1 - Blob (the class centralizes too much behavior)
2 - Data Class (the class only holds data behind trivial accessors)
Answer with the single digit only.`

const classFewShot = `Example:
public class Point { private int x; private int y; public int getX() { return x; } public int getY() { return y; } }
Answer: 2

Example:
public class Greeter { public String greet(String name) { return "Hello, " + name; } }
Answer: 0
`

const methodSystemPrompt = `You are a code quality classifier. You are given a Java method and must answer with exactly one label:
0 - no smell
3 - Feature Envy (the method mostly manipulates another object's data)
4 - Long Method (the method is too long or too deeply branched)
Answer with the single digit only.`

const methodFewShot = `Example:
public int add(int a, int b) { return a + b; }
Answer: 0

Example:
public void sync(Account a) { a.getLedger().open(); a.getLedger().append(a.getBalance()); a.getLedger().close(); a.getAudit().record(a.getId()); }
Answer: 3
`
